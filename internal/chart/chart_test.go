package chart

import (
	"testing"

	"salesboard/internal/model"
)

func sampleSummary() model.Summary {
	return model.Summary{
		TotalSales:   450,
		AverageSale:  90,
		Transactions: 5,
		CategoryBreakdown: []model.GroupTotal{
			{Label: "Classic Cars", Total: 325, Count: 3},
			{Label: "Planes", Total: 75, Count: 1},
		},
		RegionBreakdown: []model.GroupTotal{
			{Label: "USA", Total: 300, Count: 2},
			{Label: "France", Total: 75, Count: 2},
			{Label: "Germany", Total: 75, Count: 1},
		},
		RevenueTrend: []model.TrendPoint{
			{Bucket: "2024-01", Total: 350},
			{Bucket: "2024-02", Total: 100},
		},
	}
}

func TestBuildProducesAllCharts(t *testing.T) {
	configs := Build(sampleSummary())
	if len(configs) != 3 {
		t.Fatalf("Build returned %d charts; want 3", len(configs))
	}

	wantTypes := []string{"bar", "pie", "line"}
	wantTitles := []string{"Sales by Product", "Sales by Region", "Sales Trend Over Time"}
	for i, c := range configs {
		if c.ChartType != wantTypes[i] {
			t.Errorf("chart %d type = %q; want %q", i, c.ChartType, wantTypes[i])
		}
		if c.Title != wantTitles[i] {
			t.Errorf("chart %d title = %q; want %q", i, c.Title, wantTitles[i])
		}
		if len(c.Series) != 1 {
			t.Errorf("chart %d has %d series; want 1", i, len(c.Series))
		}
	}

	bar := configs[0]
	if len(bar.Series[0].Data) != 2 {
		t.Fatalf("bar chart has %d points; want 2", len(bar.Series[0].Data))
	}
	if p := bar.Series[0].Data[0]; p.Label != "Classic Cars" || p.Value != 325 {
		t.Errorf("bar point 0 = %+v; want Classic Cars/325", p)
	}
	if len(bar.Colors) != 2 {
		t.Errorf("bar chart has %d colors; want one per point", len(bar.Colors))
	}

	pie := configs[1]
	if pie.ShowGrid {
		t.Error("pie chart should not show a grid")
	}

	line := configs[2]
	if p := line.Series[0].Data[1]; p.Label != "2024-02" || p.Value != 100 {
		t.Errorf("line point 1 = %+v; want 2024-02/100", p)
	}
}

func TestBuildOmitsChartsWithoutData(t *testing.T) {
	s := sampleSummary()
	s.RegionBreakdown = nil
	s.RevenueTrend = nil

	configs := Build(s)
	if len(configs) != 1 {
		t.Fatalf("Build returned %d charts; want 1", len(configs))
	}
	if configs[0].ChartType != "bar" {
		t.Errorf("remaining chart type = %q; want bar", configs[0].ChartType)
	}

	if got := Build(model.Summary{}); got != nil {
		t.Errorf("Build of empty summary = %v; want nil", got)
	}
}
