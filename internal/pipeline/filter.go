package pipeline

import (
	"strings"
	"time"

	"salesboard/internal/dataset"
	"salesboard/internal/model"
)

// ApplyFilter returns the indices of rows matching every predicate in f.
// Predicates AND across fields; values within a field OR. The dataset is
// never mutated, the view is just an index list.
func ApplyFilter(ds *dataset.Dataset, f model.FilterState) []int {
	n := ds.NumRows()
	indices := make([]int, 0, n)

	catSet := toLowerSet(f.Categories)
	regSet := toLowerSet(f.Regions)
	statSet := toLowerSet(f.Statuses)
	yearSet := toLowerSet(f.Years)

	// An unparseable date bound, or a date predicate against a dataset with
	// no date column, can match nothing; same rule as matchSet on an absent
	// column.
	var from, to time.Time
	var hasFrom, hasTo bool
	if f.From != "" {
		if from, hasFrom = dataset.ParseDate(f.From); !hasFrom {
			return indices
		}
	}
	if f.To != "" {
		if to, hasTo = dataset.ParseDate(f.To); !hasTo {
			return indices
		}
	}
	schema := ds.Schema
	if (hasFrom || hasTo) && schema.DateCol < 0 {
		return indices
	}

	for i := 0; i < n; i++ {
		if hasFrom || hasTo {
			t, ok := ds.Date(i, schema.DateCol)
			if !ok {
				continue
			}
			if hasFrom && t.Before(from) {
				continue
			}
			if hasTo && t.After(to) {
				continue
			}
		}
		if !matchSet(ds, i, schema.ProductCol, catSet) {
			continue
		}
		if !matchSet(ds, i, schema.RegionCol, regSet) {
			continue
		}
		if !matchSet(ds, i, schema.StatusCol, statSet) {
			continue
		}
		if !matchSet(ds, i, schema.YearCol, yearSet) {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

// Options returns the distinct filterable values of a cleaned dataset, for
// UI filter controls.
func Options(ds *dataset.Dataset) model.FilterOptions {
	opts := model.FilterOptions{
		Categories: uniqueValues(ds, ds.Schema.ProductCol),
		Regions:    uniqueValues(ds, ds.Schema.RegionCol),
		Statuses:   uniqueValues(ds, ds.Schema.StatusCol),
		Years:      uniqueValues(ds, ds.Schema.YearCol),
	}
	if ds.Schema.DateCol >= 0 {
		var min, max time.Time
		for i := 0; i < ds.NumRows(); i++ {
			t, ok := ds.Date(i, ds.Schema.DateCol)
			if !ok {
				continue
			}
			if min.IsZero() || t.Before(min) {
				min = t
			}
			if t.After(max) {
				max = t
			}
		}
		if !min.IsZero() {
			opts.DateMin = min.Format(dataset.DateLayout)
			opts.DateMax = max.Format(dataset.DateLayout)
		}
	}
	return opts
}

func matchSet(ds *dataset.Dataset, row, col int, allowed map[string]bool) bool {
	if len(allowed) == 0 {
		return true
	}
	if col < 0 {
		// Filtering on a column the dataset doesn't have matches nothing.
		return false
	}
	return allowed[strings.ToLower(ds.Cell(row, col))]
}

func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(strings.TrimSpace(item))] = true
	}
	return set
}

func uniqueValues(ds *dataset.Dataset, col int) []string {
	if col < 0 {
		return nil
	}
	seen := make(map[string]bool)
	var values []string
	for i := 0; i < ds.NumRows(); i++ {
		v := ds.Cell(i, col)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
