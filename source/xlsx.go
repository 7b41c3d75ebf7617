// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readWorkbook returns the rows of the first sheet. excelize drops trailing
// empty cells, so rows are padded to the widest row.
func readWorkbook(file string) ([][]string, error) {
	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("open workbook: %w: no sheets", ErrEmptyInput)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		if len(row) > 0 && len(row) < width {
			rows[i] = append(row, make([]string, width-len(row))...)
		}
	}
	return rows, nil
}
