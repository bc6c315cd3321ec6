package model

import "time"

// GroupTotal is one slice of a breakdown KPI (e.g. sales for one category).
type GroupTotal struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TrendPoint is one bucket of the revenue trend series.
type TrendPoint struct {
	Bucket string  `json:"bucket"` // "2024-01-15" or "2024-01" depending on bucketing
	Total  float64 `json:"total"`
}

// Summary holds the computed KPI values for a dataset under a filter state.
// It is always derived from (Dataset, FilterState), never accumulated.
type Summary struct {
	TotalSales        float64      `json:"total_sales"`
	AverageSale       float64      `json:"average_sale"`
	Transactions      int          `json:"transactions"`
	CategoryBreakdown []GroupTotal `json:"category_breakdown,omitempty"`
	RegionBreakdown   []GroupTotal `json:"region_breakdown,omitempty"`
	RevenueTrend      []TrendPoint `json:"revenue_trend,omitempty"`
}

// FilterState is the transient set of predicates applied to a dataset before
// summarizing or exporting. Zero values mean "no restriction".
type FilterState struct {
	From       string   `json:"from,omitempty"` // inclusive, dataset.DateLayout
	To         string   `json:"to,omitempty"`   // inclusive
	Categories []string `json:"categories,omitempty"`
	Regions    []string `json:"regions,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
	Years      []string `json:"years,omitempty"`
	Bucket     string   `json:"bucket,omitempty"` // "day" (default) or "month"
}

// IsEmpty reports whether no predicates are set (bucketing is presentation,
// not a predicate).
func (f FilterState) IsEmpty() bool {
	return f.From == "" && f.To == "" &&
		len(f.Categories) == 0 && len(f.Regions) == 0 &&
		len(f.Statuses) == 0 && len(f.Years) == 0
}

// CleanReport describes what one cleaning pass did to a dataset.
type CleanReport struct {
	RowsIn            int `json:"rows_in"`
	RowsOut           int `json:"rows_out"`
	RowsDroppedNoDate int `json:"rows_dropped_no_date"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	CellsImputed      int `json:"cells_imputed"`
	CellsCoerceFailed int `json:"cells_coerce_failed"`
}

// DatasetMeta is the persisted metadata for an uploaded dataset.
type DatasetMeta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "cleaning", "ready", "failed"
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FilterOptions lists the distinct values a UI can offer as filter controls.
type FilterOptions struct {
	Categories []string `json:"categories,omitempty"`
	Regions    []string `json:"regions,omitempty"`
	Statuses   []string `json:"statuses,omitempty"`
	Years      []string `json:"years,omitempty"`
	DateMin    string   `json:"dateMin,omitempty"`
	DateMax    string   `json:"dateMax,omitempty"`
}
