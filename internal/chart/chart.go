// Package chart turns a KPI summary into render-ready chart configurations.
// The package only produces plain data; rendering belongs to whatever UI
// consumes the API.
package chart

import "salesboard/internal/model"

// Config describes one chart for the dashboard frontend.
type Config struct {
	ChartType  string   `json:"chartType"` // "bar", "pie", "line"
	Title      string   `json:"title"`
	XAxis      string   `json:"xAxis,omitempty"`
	YAxis      string   `json:"yAxis,omitempty"`
	Series     []Series `json:"series"`
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
	ShowGrid   bool     `json:"showGrid"`
}

// Series is one data series of a chart.
type Series struct {
	Name string  `json:"name"`
	Data []Point `json:"data"`
}

// Point is a single labelled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

var palette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Build produces the dashboard's standard charts from a summary: a bar chart
// of sales by product, a pie of sales by region, and the revenue trend line.
// Charts without backing data are omitted.
func Build(s model.Summary) []Config {
	var configs []Config

	if len(s.CategoryBreakdown) > 0 {
		configs = append(configs, fromBreakdown("bar", "Sales by Product", "Product", s.CategoryBreakdown))
	}
	if len(s.RegionBreakdown) > 0 {
		configs = append(configs, fromBreakdown("pie", "Sales by Region", "Region", s.RegionBreakdown))
	}
	if len(s.RevenueTrend) > 0 {
		points := make([]Point, 0, len(s.RevenueTrend))
		for _, p := range s.RevenueTrend {
			points = append(points, Point{Label: p.Bucket, Value: p.Total})
		}
		configs = append(configs, Config{
			ChartType:  "line",
			Title:      "Sales Trend Over Time",
			XAxis:      "Date",
			YAxis:      "Sales",
			Series:     []Series{{Name: "Sales", Data: points}},
			Colors:     assignColors(1),
			ShowLegend: true,
			ShowGrid:   true,
		})
	}
	return configs
}

func fromBreakdown(chartType, title, axis string, groups []model.GroupTotal) Config {
	points := make([]Point, 0, len(groups))
	for _, g := range groups {
		points = append(points, Point{Label: g.Label, Value: g.Total})
	}
	return Config{
		ChartType:  chartType,
		Title:      title,
		XAxis:      axis,
		YAxis:      "Sales",
		Series:     []Series{{Name: "Sales", Data: points}},
		Colors:     assignColors(len(points)),
		ShowLegend: true,
		ShowGrid:   chartType != "pie",
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range colors {
		colors[i] = palette[i%len(palette)]
	}
	return colors
}
