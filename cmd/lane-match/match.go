// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/someonegg/lanematch"
	"github.com/someonegg/lanematch/geo"
	"github.com/someonegg/lanematch/geo/northam"
	"github.com/someonegg/lanematch/lanes"
	"github.com/someonegg/lanematch/report"
	"github.com/someonegg/lanematch/source"
)

func doMatch(ctx context.Context, log *zap.Logger,
	inputFile, outFile, laneFile, overFile string,
	schema source.Schema, strategy lanematch.Strategy, withBOM bool) error {

	ls, err := loadLanes(laneFile)
	if err != nil {
		return fmt.Errorf("load lane file failed: %w", err)
	}

	unifier, err := newUnifier(overFile)
	if err != nil {
		return fmt.Errorf("load override file failed: %w", err)
	}

	matcher, err := lanematch.NewMatcher(strategy, unifier)
	if err != nil {
		return err
	}

	reader := &source.Reader{Schema: schema, Logger: log}
	carriers, stats, err := reader.ReadFile(ctx, inputFile)
	if err != nil {
		return fmt.Errorf("read input file failed: %w", err)
	}
	log.Info("carriers loaded",
		zap.String("input", inputFile),
		zap.Int("rows", stats.Rows),
		zap.Int("carriers", stats.Carriers),
		zap.Int("skipped", stats.Skipped),
		zap.Int("filtered", stats.Filtered))

	builder := &report.Builder{
		Matcher: matcher,
		Unifier: unifier,
		Logger:  log,
	}
	rows, summ := builder.Build(carriers, ls)

	if err := writeReport(outFile, rows, summ, withBOM); err != nil {
		return fmt.Errorf("write report file failed: %w", err)
	}
	log.Info("report written",
		zap.String("output", outFile),
		zap.Stringer("strategy", strategy),
		zap.Int("lanes", len(ls)),
		zap.Int("records", summ.Records))

	return report.WriteSummary(os.Stdout, summ)
}

func doLanes(w io.Writer, laneFile string) error {
	ls, err := loadLanes(laneFile)
	if err != nil {
		return fmt.Errorf("load lane file failed: %w", err)
	}
	data, err := lanes.Marshal(ls)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func loadSchema(name, companyType string, overrideType bool) (source.Schema, error) {
	schema, err := source.LoadSchema(name)
	if err != nil {
		return source.Schema{}, fmt.Errorf("load schema failed: %w", err)
	}
	if overrideType {
		schema.CompanyType = companyType
	}
	if err := schema.Validate(); err != nil {
		return source.Schema{}, err
	}
	return schema, nil
}

func loadLanes(file string) ([]*lanematch.Lane, error) {
	if file == "" {
		return lanes.Default()
	}
	return lanes.Load(file)
}

func newUnifier(overFile string) (geo.LocationUnifier, error) {
	var u geo.LocationUnifier = northam.NewLocationUnifier()
	if overFile == "" {
		return u, nil
	}
	recs, err := geo.LoadUnifyRecords(overFile)
	if err != nil {
		return nil, err
	}
	return geo.NewComplexUnifier(u, recs), nil
}

func writeReport(file string, rows []report.Row, summ report.Summary, withBOM bool) error {
	if strings.EqualFold(filepath.Ext(file), ".xlsx") {
		return report.WriteXLSX(file, rows, summ)
	}
	return report.WriteCSVFile(file, rows, withBOM)
}
