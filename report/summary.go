// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
)

// WriteSummary prints the per-lane counts for humans.
func WriteSummary(w io.Writer, summ Summary) error {
	if _, err := fmt.Fprintf(w, "carriers read: %d, rows written: %d\n\n", summ.Carriers, summ.Records); err != nil {
		return err
	}
	for _, ls := range summ.Lanes {
		if _, err := fmt.Fprintf(w, "%s: %d unique carriers, %d records\n", ls.LaneID, ls.Carriers, ls.Records); err != nil {
			return err
		}
	}
	return nil
}
