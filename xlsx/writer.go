// Package xlsx writes facility records as Excel workbooks using
// excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/fwojciec/alfroster"
	"github.com/xuri/excelize/v2"
)

// Ensure Writer implements alfroster.FacilityWriter at compile time.
var _ alfroster.FacilityWriter = (*Writer)(nil)

// SheetName is the worksheet that holds the facility rows.
const SheetName = "Facilities"

// Writer writes facilities to an XLSX workbook with the fixed roster
// column order.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteAll writes a header row plus one row per facility. An empty
// sequence is rejected with EEMPTY before any file is created.
func (w *Writer) WriteAll(ctx context.Context, facilities []*alfroster.Facility) error {
	if len(facilities) == 0 {
		return alfroster.Errorf(alfroster.EEMPTY, "no facilities to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	if err := writeRow(f, 1, alfroster.Columns()); err != nil {
		return err
	}
	for i, fac := range facilities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeRow(f, i+2, fac.Row()); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save %q: %w", w.path, err)
	}
	return nil
}

// writeRow writes values into the given one-based row.
func writeRow(f *excelize.File, row int, values []string) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
