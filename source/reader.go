// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source reads carrier records from CSV and XLSX exports.
package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/someonegg/lanematch"
	"github.com/someonegg/lanematch/geo"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyInput    = errors.New("empty input")
)

// ContextCheckInterval is how often, in rows, the reader checks for
// cancellation.
var ContextCheckInterval = 100

// missingValues are cell contents that mean "no value".
var missingValues = []string{"none", "null", "n/a", "nan"}

// Stats counts what happened to the input rows.
type Stats struct {
	Rows     int // data rows seen, header excluded
	Carriers int
	Skipped  int // empty or too short
	Filtered int // other company types
}

type Reader struct {
	Schema Schema
	Logger *zap.Logger // can be nil
}

func (r *Reader) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// ReadFile reads the first sheet of an .xlsx workbook, or any other file as
// CSV.
func (r *Reader) ReadFile(ctx context.Context, file string) ([]*lanematch.Carrier, Stats, error) {
	if strings.EqualFold(filepath.Ext(file), ".xlsx") {
		rows, err := readWorkbook(file)
		if err != nil {
			return nil, Stats{}, err
		}
		return r.ReadRows(ctx, rows)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, Stats{}, err
	}
	defer f.Close()

	return r.Read(ctx, f)
}

// Read reads CSV records from in. Records the CSV parser rejects are
// skipped like short rows.
func (r *Reader) Read(ctx context.Context, in io.Reader) ([]*lanematch.Carrier, Stats, error) {
	cr := csv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		rows    [][]string
		invalid int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				invalid++
				r.logger().Debug("unparsable row skipped", zap.Int("line", perr.Line), zap.Error(perr.Err))
				continue
			}
			return nil, Stats{}, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}

	carriers, stats, err := r.ReadRows(ctx, rows)
	stats.Rows += invalid
	stats.Skipped += invalid
	return carriers, stats, err
}

// ReadRows converts raw table rows to carriers according to the schema.
func (r *Reader) ReadRows(ctx context.Context, rows [][]string) ([]*lanematch.Carrier, Stats, error) {
	var stats Stats

	if err := r.Schema.Validate(); err != nil {
		return nil, stats, err
	}

	positions := r.Schema.Positions
	if r.Schema.Header {
		hi := firstNonEmpty(rows)
		if hi < 0 {
			return nil, stats, ErrEmptyInput
		}
		var err error
		positions, err = r.resolveHeader(rows[hi])
		if err != nil {
			return nil, stats, err
		}
		rows = rows[hi+1:]
	}
	minCols := r.Schema.MinColumns
	if minCols == 0 {
		for _, f := range requiredFields {
			if p := positions[f]; p+1 > minCols {
				minCols = p + 1
			}
		}
	}

	var carriers []*lanematch.Carrier
	for i, row := range rows {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, fmt.Errorf("read cancelled at row %d: %w", i+1, err)
			}
		}
		stats.Rows++

		if isEmptyRow(row) || len(row) < minCols {
			stats.Skipped++
			continue
		}

		cell := func(f Field) string {
			p, ok := positions[f]
			if !ok || p >= len(row) {
				return ""
			}
			return cleanCell(row[p])
		}

		if r.Schema.CompanyType != "" && !strings.EqualFold(cell(FieldType), r.Schema.CompanyType) {
			stats.Filtered++
			continue
		}

		carriers = append(carriers, &lanematch.Carrier{
			ID:    cell(FieldID),
			Type:  cell(FieldType),
			Name:  cell(FieldName),
			Email: cell(FieldEmail),
			Phone: cell(FieldPhone),
			Location: geo.Location{
				City:    cell(FieldCity),
				State:   cell(FieldState),
				Country: cell(FieldCountry),
			},
			Source: cell(FieldSource),
		})
	}
	stats.Carriers = len(carriers)

	r.logger().Debug("rows read",
		zap.Int("rows", stats.Rows),
		zap.Int("carriers", stats.Carriers),
		zap.Int("skipped", stats.Skipped),
		zap.Int("filtered", stats.Filtered))

	return carriers, stats, nil
}

func (r *Reader) resolveHeader(header []string) (map[Field]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		key := cleanHeader(h)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	positions := make(map[Field]int, len(r.Schema.Columns))
	for f, name := range r.Schema.Columns {
		p, ok := index[cleanHeader(name)]
		if !ok {
			if isRequired(f) || (f == FieldType && r.Schema.CompanyType != "") {
				return nil, fmt.Errorf("%w %q for %s", ErrMissingColumn, name, f)
			}
			r.logger().Debug("optional column absent", zap.String("column", name))
			continue
		}
		positions[f] = p
	}
	return positions, nil
}

func isRequired(f Field) bool {
	for _, rf := range requiredFields {
		if rf == f {
			return true
		}
	}
	return false
}

// cleanHeader strips a UTF-8 BOM, surrounding whitespace and case.
func cleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	for _, m := range missingValues {
		if strings.EqualFold(s, m) {
			return ""
		}
	}
	return s
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func firstNonEmpty(rows [][]string) int {
	for i, row := range rows {
		if !isEmptyRow(row) {
			return i
		}
	}
	return -1
}
