package pipeline

import (
	"sort"

	"salesboard/internal/dataset"
	"salesboard/internal/model"
	"salesboard/pkg/utils"
)

// Summarize computes the KPI summary for a cleaned dataset under a filter
// state. It is a pure function of its inputs: an empty FilterState yields
// exactly the summary of the whole dataset.
func Summarize(ds *dataset.Dataset, f model.FilterState) model.Summary {
	return summarizeRows(ds, ApplyFilter(ds, f), f.Bucket)
}

// summarizeRows aggregates the given row indices.
func summarizeRows(ds *dataset.Dataset, rows []int, bucket string) model.Summary {
	var s model.Summary
	s.Transactions = len(rows)
	if len(rows) == 0 {
		return s
	}

	schema := ds.Schema
	for _, i := range rows {
		if amount, ok := ds.Amount(i); ok {
			s.TotalSales += amount
		}
	}
	s.TotalSales = utils.Round2(s.TotalSales)
	s.AverageSale = utils.Round2(s.TotalSales / float64(len(rows)))

	s.CategoryBreakdown = breakdown(ds, rows, schema.ProductCol)
	s.RegionBreakdown = breakdown(ds, rows, schema.RegionCol)
	s.RevenueTrend = trend(ds, rows, bucket)
	return s
}

// breakdown sums the amount per distinct value of a grouping column,
// sorted by total descending.
func breakdown(ds *dataset.Dataset, rows []int, col int) []model.GroupTotal {
	if col < 0 {
		return nil
	}

	totals := make(map[string]*model.GroupTotal)
	order := make([]string, 0)

	for _, i := range rows {
		label := ds.Cell(i, col)
		g, ok := totals[label]
		if !ok {
			g = &model.GroupTotal{Label: label}
			totals[label] = g
			order = append(order, label)
		}
		g.Count++
		if amount, ok := ds.Amount(i); ok {
			g.Total += amount
		}
	}

	result := make([]model.GroupTotal, 0, len(order))
	for _, label := range order {
		g := totals[label]
		g.Total = utils.Round2(g.Total)
		result = append(result, *g)
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Total > result[j].Total })
	return result
}

// trend buckets the amount by date. bucket is "day" (default) or "month";
// points come back in chronological order.
func trend(ds *dataset.Dataset, rows []int, bucket string) []model.TrendPoint {
	col := ds.Schema.DateCol
	if col < 0 {
		return nil
	}

	keyLen := len(dataset.DateLayout)
	if bucket == "month" {
		keyLen = len("2006-01")
	}

	totals := make(map[string]float64)
	for _, i := range rows {
		t, ok := ds.Date(i, col)
		if !ok {
			continue
		}
		key := t.Format(dataset.DateLayout)[:keyLen]
		if amount, ok := ds.Amount(i); ok {
			totals[key] += amount
		}
	}

	points := make([]model.TrendPoint, 0, len(totals))
	for key, total := range totals {
		points = append(points, model.TrendPoint{Bucket: key, Total: utils.Round2(total)})
	}
	// Canonical date keys sort chronologically as strings.
	sort.Slice(points, func(i, j int) bool { return points[i].Bucket < points[j].Bucket })
	return points
}
