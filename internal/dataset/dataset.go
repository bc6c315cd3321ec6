package dataset

import "time"

// Dataset is an in-memory tabular collection of sales records. Cells are
// stored as strings; cleaning normalizes them in place to canonical forms
// (numbers without separators, dates as DateLayout), which is what makes a
// second cleaning pass a no-op.
type Dataset struct {
	Schema Schema
	Rows   [][]string
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int { return len(d.Rows) }

// NumColumns returns the number of columns.
func (d *Dataset) NumColumns() int { return len(d.Schema.Columns) }

// Cell returns the raw cell at (row, col), or "" when out of range.
func (d *Dataset) Cell(row, col int) string {
	if row < 0 || row >= len(d.Rows) || col < 0 || col >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][col]
}

// Number parses the cell at (row, col) as a number.
func (d *Dataset) Number(row, col int) (float64, bool) {
	return ParseNumber(d.Cell(row, col))
}

// Date parses the cell at (row, col) as a date.
func (d *Dataset) Date(row, col int) (time.Time, bool) {
	return ParseDate(d.Cell(row, col))
}

// Amount returns the sales amount of a row, using the detected amount column.
func (d *Dataset) Amount(row int) (float64, bool) {
	if d.Schema.AmountCol < 0 {
		return 0, false
	}
	return d.Number(row, d.Schema.AmountCol)
}

// Clone returns a deep copy. Cleaning works on a clone so callers keep the
// raw dataset untouched.
func (d *Dataset) Clone() *Dataset {
	rows := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		rows[i] = append([]string(nil), row...)
	}
	cols := append([]Column(nil), d.Schema.Columns...)
	schema := d.Schema
	schema.Columns = cols
	return &Dataset{Schema: schema, Rows: rows}
}

// Equal reports whether two datasets have identical schemas and cells.
func (d *Dataset) Equal(other *Dataset) bool {
	if other == nil || len(d.Rows) != len(other.Rows) || len(d.Schema.Columns) != len(other.Schema.Columns) {
		return false
	}
	for i, c := range d.Schema.Columns {
		if other.Schema.Columns[i] != c {
			return false
		}
	}
	for i, row := range d.Rows {
		if len(row) != len(other.Rows[i]) {
			return false
		}
		for j, cell := range row {
			if other.Rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}
