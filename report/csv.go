// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/someonegg/lanematch"
)

// Header is the fixed column set of the report.
var Header = []string{
	"LANE_ID",
	"LANE_DESCRIPTION",
	"CARRIER_ID",
	"CARRIER_NAME",
	"CITY",
	"STATE",
	"COUNTRY",
	"EMAIL",
	"PHONE",
	"MATCH_TAGS",
	"DATA_ORIGIN",
}

var ErrBadHeader = errors.New("unexpected report header")

var bom = []byte{0xEF, 0xBB, 0xBF}

func (r *Row) Record() []string {
	return []string{
		r.LaneID,
		r.LaneDescription,
		r.CarrierID,
		r.CarrierName,
		r.City,
		r.State,
		r.Country,
		r.Email,
		r.Phone,
		r.Tags.String(),
		r.Source,
	}
}

func rowOf(record []string) (Row, error) {
	tags, err := lanematch.ParseTags(record[9])
	if err != nil {
		return Row{}, err
	}
	return Row{
		LaneID:          record[0],
		LaneDescription: record[1],
		CarrierID:       record[2],
		CarrierName:     record[3],
		City:            record[4],
		State:           record[5],
		Country:         record[6],
		Email:           record[7],
		Phone:           record[8],
		Tags:            tags,
		Source:          record[10],
	}, nil
}

// WriteCSV writes the header and rows. withBOM prefixes a UTF-8 byte order
// mark so spreadsheet tools detect the encoding.
func WriteCSV(w io.Writer, rows []Row, withBOM bool) error {
	if withBOM {
		if _, err := w.Write(bom); err != nil {
			return fmt.Errorf("write bom: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range rows {
		if err := cw.Write(rows[i].Record()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the report to file, creating its directory.
func WriteCSVFile(file string, rows []Row, withBOM bool) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := WriteCSV(bw, rows, withBOM); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses a report written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty report", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i := range Header {
		if header[i] != Header[i] {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, header[i], Header[i])
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		row, err := rowOf(record)
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
