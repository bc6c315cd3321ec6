package pipeline

import (
	"strings"

	"salesboard/internal/dataset"
	"salesboard/internal/model"
	"salesboard/pkg/utils"
)

// UnknownMarker fills missing categorical cells.
const UnknownMarker = dataset.UnknownMarker

// ImputeStrategy selects how missing numeric cells are filled.
type ImputeStrategy string

const (
	ImputeMean ImputeStrategy = "mean" // column mean of the surviving rows
	ImputeZero ImputeStrategy = "zero"
)

// Cleaner normalizes a raw dataset into its cleaned form:
//
//  1. cells are coerced to their column type; failures become missing
//  2. missing numerics are imputed, missing categoricals become "unknown",
//     rows without a parseable date are dropped
//  3. exact-duplicate rows collapse to one
//
// Cleaning is idempotent: running it on already-cleaned data changes nothing.
type Cleaner struct {
	logger    *utils.Logger
	strategy  ImputeStrategy
	tolerance float64 // max share of amount cells allowed to fail coercion
}

// NewCleaner creates a Cleaner. A tolerance of 0 or less falls back to 0.5.
func NewCleaner(logger *utils.Logger, strategy ImputeStrategy, tolerance float64) *Cleaner {
	if strategy == "" {
		strategy = ImputeMean
	}
	if tolerance <= 0 {
		tolerance = 0.5
	}
	return &Cleaner{logger: logger, strategy: strategy, tolerance: tolerance}
}

// Clean runs the full cleaning pass over a copy of ds and returns the
// cleaned dataset plus a report. It fails with a DataFormatError when the
// amount column is absent or unparseable beyond the tolerance.
func (c *Cleaner) Clean(ds *dataset.Dataset) (*dataset.Dataset, model.CleanReport, error) {
	report := model.CleanReport{RowsIn: ds.NumRows()}

	schema := ds.Schema
	if schema.AmountCol < 0 {
		return nil, report, dataset.NewDataFormatError(
			"no sales or revenue column found (columns: %s)", strings.Join(schema.ColumnNames(), ", "))
	}

	out := ds.Clone()

	// Drop rows whose date cell is missing or unparseable. The date acts as
	// the primary-key-like field of a sales record.
	if schema.DateCol >= 0 {
		kept := out.Rows[:0]
		for _, row := range out.Rows {
			if _, ok := dataset.ParseDate(row[schema.DateCol]); !ok {
				report.RowsDroppedNoDate++
				continue
			}
			kept = append(kept, row)
		}
		out.Rows = kept
	}

	if len(out.Rows) == 0 {
		return nil, report, dataset.NewDataFormatError("no rows with a valid date remain after cleaning")
	}

	// The amount column must be mostly parseable before imputation papers
	// over the gaps.
	failed := 0
	for i := range out.Rows {
		if _, ok := dataset.ParseNumber(out.Rows[i][schema.AmountCol]); !ok {
			failed++
		}
	}
	if ratio := float64(failed) / float64(len(out.Rows)); ratio > c.tolerance {
		return nil, report, dataset.NewDataFormatError(
			"%.0f%% of amount cells are unparseable (tolerance %.0f%%)", ratio*100, c.tolerance*100)
	}

	// Coerce cells column by column, tracking failures for imputation.
	for col, meta := range out.Schema.Columns {
		switch meta.Type {
		case dataset.TypeNumeric:
			c.coerceNumericColumn(out, col, &report)
		case dataset.TypeDate:
			c.coerceDateColumn(out, col, &report)
		default:
			c.coerceCategoricalColumn(out, col, &report)
		}
	}

	report.DuplicatesRemoved = dedupe(out)
	report.RowsOut = out.NumRows()

	if c.logger != nil {
		c.logger.Info("[cleaner] %d → %d rows (dropped %d without date, %d duplicates, imputed %d cells)",
			report.RowsIn, report.RowsOut, report.RowsDroppedNoDate, report.DuplicatesRemoved, report.CellsImputed)
	}
	return out, report, nil
}

// coerceNumericColumn normalizes parseable cells to canonical form and
// imputes the rest with the column mean (or zero).
func (c *Cleaner) coerceNumericColumn(ds *dataset.Dataset, col int, report *model.CleanReport) {
	var sum float64
	var n int
	missing := make([]int, 0)

	for i, row := range ds.Rows {
		v, ok := dataset.ParseNumber(row[col])
		if !ok {
			if !dataset.IsMissing(row[col]) {
				report.CellsCoerceFailed++
			}
			missing = append(missing, i)
			continue
		}
		row[col] = utils.FormatNumber(v)
		sum += v
		n++
	}

	fill := 0.0
	if c.strategy == ImputeMean && n > 0 {
		fill = sum / float64(n)
	}
	filled := utils.FormatNumber(fill)
	for _, i := range missing {
		ds.Rows[i][col] = filled
		report.CellsImputed++
	}
}

// coerceDateColumn rewrites parseable dates into the canonical layout.
// Unparseable non-primary date cells become the unknown marker; the primary
// date column never reaches here with bad cells (those rows were dropped).
func (c *Cleaner) coerceDateColumn(ds *dataset.Dataset, col int, report *model.CleanReport) {
	for _, row := range ds.Rows {
		t, ok := dataset.ParseDate(row[col])
		if !ok {
			if !dataset.IsMissing(row[col]) {
				report.CellsCoerceFailed++
			}
			if row[col] != UnknownMarker {
				row[col] = UnknownMarker
				report.CellsImputed++
			}
			continue
		}
		row[col] = t.Format(dataset.DateLayout)
	}
}

// coerceCategoricalColumn trims whitespace and fills missing cells with the
// explicit unknown marker.
func (c *Cleaner) coerceCategoricalColumn(ds *dataset.Dataset, col int, report *model.CleanReport) {
	for _, row := range ds.Rows {
		val := strings.TrimSpace(row[col])
		if dataset.IsMissing(val) {
			if row[col] != UnknownMarker {
				report.CellsImputed++
			}
			row[col] = UnknownMarker
			continue
		}
		row[col] = val
	}
}

// dedupe removes exact-duplicate rows in place, keeping first occurrences.
// Returns the number of rows removed.
func dedupe(ds *dataset.Dataset) int {
	seen := make(map[string]struct{}, len(ds.Rows))
	kept := ds.Rows[:0]
	removed := 0

	for _, row := range ds.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			removed++
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	ds.Rows = kept
	return removed
}
