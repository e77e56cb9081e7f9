// Package csv provides the CSV-file implementation of provscan.RecordWriter.
package csv

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/provscan"
)

// Ensure Writer implements provscan.RecordWriter at compile time.
var _ provscan.RecordWriter = (*Writer)(nil)

// Writer appends provider records to a CSV file. The header is written once
// when the writer is created; each record append opens the file, writes one
// row, and closes it again, so every row is its own unit of durability and a
// terminated run leaves a well-formed file behind.
type Writer struct {
	path string
}

// NewWriter creates the output file at path, truncating any existing file,
// and writes the 17-column header row.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(provscan.FieldNames); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.Close(); err != nil {
		return nil, err
	}

	return &Writer{path: path}, nil
}

// WriteRecord appends one row in the fixed column order.
func (w *Writer) WriteRecord(ctx context.Context, rec *provscan.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(rec.Values()); err != nil {
		f.Close()
		return err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
