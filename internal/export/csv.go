package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"salesboard/internal/dataset"
)

// WriteCSV streams a cleaned dataset as CSV, header first. rows selects the
// filtered view; nil exports everything. The output matches the cleaned
// schema, so re-ingesting it reproduces the same dataset.
func WriteCSV(w io.Writer, ds *dataset.Dataset, rows []int) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ds.Schema.ColumnNames()); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}

	if rows == nil {
		for i := range ds.Rows {
			if err := writer.Write(ds.Rows[i]); err != nil {
				return fmt.Errorf("csv: write row: %w", err)
			}
		}
	} else {
		for _, i := range rows {
			if err := writer.Write(ds.Rows[i]); err != nil {
				return fmt.Errorf("csv: write row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVWriter writes cleaned datasets to a file. Safe for concurrent use.
type CSVWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewCSVWriter creates (or truncates) the file at path, creating
// intermediate directories as needed.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}
	return &CSVWriter{path: path, file: f}, nil
}

// Write exports the dataset view to the file.
func (c *CSVWriter) Write(ds *dataset.Dataset, rows []int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return WriteCSV(c.file, ds, rows)
}

// Close closes the underlying file.
func (c *CSVWriter) Close() error {
	return c.file.Close()
}
