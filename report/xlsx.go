// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const (
	matchesSheet = "matches"
	summarySheet = "summary"
)

var summaryHeader = []string{"LANE_ID", "LANE_DESCRIPTION", "UNIQUE_CARRIERS", "RECORDS"}

// WriteXLSX writes rows to a "matches" sheet with the CSV columns and the
// per-lane counts to a "summary" sheet.
func WriteXLSX(file string, rows []Row, summ Summary) error {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), matchesSheet); err != nil {
		return err
	}
	if err := setRow(f, matchesSheet, 1, Header); err != nil {
		return err
	}
	for i := range rows {
		if err := setRow(f, matchesSheet, i+2, rows[i].Record()); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	if err := setRow(f, summarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, ls := range summ.Lanes {
		values := []interface{}{ls.LaneID, ls.Description, ls.Carriers, ls.Records}
		if err := setRow(f, summarySheet, i+2, values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(file); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func setRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
