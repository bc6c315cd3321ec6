package dataset

import "strings"

// ColumnType is the inferred type of a column.
type ColumnType string

const (
	TypeNumeric     ColumnType = "numeric"
	TypeDate        ColumnType = "date"
	TypeCategorical ColumnType = "categorical"
	TypeText        ColumnType = "text"
)

// Column describes one column of a dataset.
type Column struct {
	Name string     `json:"name"`
	Type ColumnType `json:"type"`
}

// Schema is the set of columns shared by all rows of a Dataset, plus the
// detected roles the KPI pipeline needs. Role indices are -1 when the
// dataset has no matching column.
type Schema struct {
	Columns []Column `json:"columns"`

	AmountCol int `json:"amountCol"`
	DateCol   int `json:"dateCol"`
	// Optional grouping/filter columns.
	ProductCol int `json:"productCol"`
	RegionCol  int `json:"regionCol"`
	StatusCol  int `json:"statusCol"`
	YearCol    int `json:"yearCol"`
}

// Candidate header names for each role, checked in order. Mirrors the
// flexible column handling of the dashboard this pipeline feeds.
var (
	amountCandidates  = []string{"sales", "revenue", "sales_amount", "amount"}
	productCandidates = []string{"productline", "product_category", "product", "products", "category"}
	regionCandidates  = []string{"region", "country"}
	dateCandidates    = []string{"orderdate", "order_date", "date"}
	statusCandidates  = []string{"status"}
	yearCandidates    = []string{"year_id", "year"}
)

// typeThreshold is the share of non-missing samples that must parse as a
// type before the column is classified as that type.
const typeThreshold = 0.8

// inferSampleSize caps the rows inspected during type inference.
const inferSampleSize = 1000

// NormalizeHeader trims, lower-cases, and strips quotes from a header cell.
func NormalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, `"`, "")
	return strings.ToLower(h)
}

// InferSchema classifies each column from the data and detects role columns.
// Headers are expected to be normalized already.
func InferSchema(headers []string, rows [][]string) Schema {
	s := Schema{
		Columns:    make([]Column, len(headers)),
		AmountCol:  -1,
		DateCol:    -1,
		ProductCol: -1,
		RegionCol:  -1,
		StatusCol:  -1,
		YearCol:    -1,
	}

	sample := rows
	if len(sample) > inferSampleSize {
		sample = sample[:inferSampleSize]
	}

	for i, name := range headers {
		s.Columns[i] = Column{Name: name, Type: inferColumnType(i, sample)}
	}

	s.AmountCol = findColumn(headers, amountCandidates)
	s.DateCol = findColumn(headers, dateCandidates)
	s.ProductCol = findColumn(headers, productCandidates)
	s.RegionCol = findColumn(headers, regionCandidates)
	s.StatusCol = findColumn(headers, statusCandidates)
	s.YearCol = findColumn(headers, yearCandidates)

	// Role columns override heuristics: the amount column is always numeric
	// and the date column always a date, whatever the samples looked like.
	if s.AmountCol >= 0 {
		s.Columns[s.AmountCol].Type = TypeNumeric
	}
	if s.DateCol >= 0 {
		s.Columns[s.DateCol].Type = TypeDate
	}

	return s
}

// inferColumnType classifies one column from sampled rows.
func inferColumnType(col int, rows [][]string) ColumnType {
	numCount, dateCount, total := 0, 0, 0
	uniques := make(map[string]bool)

	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		val := strings.TrimSpace(row[col])
		if IsMissing(val) || val == UnknownMarker {
			continue
		}
		total++
		uniques[val] = true
		if _, ok := ParseNumber(val); ok {
			numCount++
		}
		if _, ok := ParseDate(val); ok {
			dateCount++
		}
	}

	if total == 0 {
		return TypeText
	}

	threshold := int(float64(total) * typeThreshold)
	if threshold == 0 {
		threshold = 1
	}
	// Dates win over numerics: "2006/01/02" also parses as nothing numeric,
	// but "20240101"-style cells can satisfy both.
	if dateCount >= threshold {
		return TypeDate
	}
	if numCount >= threshold {
		return TypeNumeric
	}
	// High-cardinality strings are free text, not grouping candidates.
	if len(uniques) > total/2 && len(uniques) > 50 {
		return TypeText
	}
	return TypeCategorical
}

// findColumn returns the index of the first candidate present in headers.
func findColumn(headers []string, candidates []string) int {
	for _, want := range candidates {
		for i, h := range headers {
			if h == want {
				return i
			}
		}
	}
	return -1
}

// ColumnNames returns the ordered header names.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}
