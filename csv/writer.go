// Package csv writes facility records as comma-delimited tabular files.
package csv

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fwojciec/alfroster"
)

// Ensure Writer implements alfroster.FacilityWriter at compile time.
var _ alfroster.FacilityWriter = (*Writer)(nil)

// Writer writes facilities to a CSV file with the fixed roster column
// order: header row first, one row per record, values verbatim.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteAll writes a header row plus one row per facility. An empty
// sequence is rejected with EEMPTY before any file is created, so a
// failed extraction never leaves a header-only file behind.
func (w *Writer) WriteAll(ctx context.Context, facilities []*alfroster.Facility) error {
	if len(facilities) == 0 {
		return alfroster.Errorf(alfroster.EEMPTY, "no facilities to write")
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(alfroster.Columns()); err != nil {
		return err
	}
	for _, f := range facilities {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(f.Row()); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	if err := os.WriteFile(w.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %q: %w", w.path, err)
	}
	return nil
}
