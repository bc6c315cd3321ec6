package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read ingests a tabular file into a raw Dataset, choosing the reader from
// the file extension. Only .csv and .xlsx are supported.
func Read(fileName string, r io.Reader) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return nil, NewDataFormatError("unsupported file type %q, upload a .csv or .xlsx file", filepath.Ext(fileName))
	}
}

// ReadCSV ingests CSV data. Headers are normalized; rows are padded or
// truncated to the header width so every Record shares the schema.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, NewDataFormatError("uploaded file is empty")
	}
	if err != nil {
		return nil, NewDataFormatError("unreadable CSV header: %v", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed rows are skipped, not fatal.
			continue
		}
		rows = append(rows, row)
	}

	return build(headers, rows)
}

// ReadXLSX ingests the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, NewDataFormatError("unreadable XLSX file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, NewDataFormatError("XLSX workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, NewDataFormatError("uploaded file is empty")
	}

	return build(rows[0], rows[1:])
}

// build normalizes headers, squares up rows, and infers the schema.
func build(headers []string, rows [][]string) (*Dataset, error) {
	if len(headers) == 0 {
		return nil, NewDataFormatError("uploaded file has no columns")
	}
	if len(rows) == 0 {
		return nil, NewDataFormatError("uploaded file has no data rows")
	}

	normalized := make([]string, len(headers))
	for i, h := range headers {
		name := NormalizeHeader(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		normalized[i] = name
	}

	for i, row := range rows {
		if len(row) == len(normalized) {
			continue
		}
		squared := make([]string, len(normalized))
		copy(squared, row)
		rows[i] = squared
	}

	return &Dataset{
		Schema: InferSchema(normalized, rows),
		Rows:   rows,
	}, nil
}
