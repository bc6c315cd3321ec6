package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"salesboard/internal/config"
	"salesboard/internal/dataset"
	"salesboard/internal/export"
	"salesboard/internal/model"
	"salesboard/internal/pipeline"
	"salesboard/pkg/utils"
)

// salesboard cleans one sales file from the command line, prints its KPI
// summary, and writes the cleaned CSV next to the input.
func main() {
	in := flag.String("in", "", "input CSV or XLSX file")
	out := flag.String("out", "", "path for the cleaned CSV (default <input>_cleaned.csv)")
	bucket := flag.String("bucket", "month", "revenue trend bucket: day or month")
	toPostgres := flag.Bool("postgres", false, "also write cleaned rows to the configured PostgreSQL sink")
	flag.Parse()

	logger := utils.NewLogger()
	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: salesboard -in sales.csv [-out cleaned.csv] [-bucket day|month] [-postgres]")
		os.Exit(2)
	}

	cfg := config.Load()

	f, err := os.Open(*in)
	if err != nil {
		logger.Error("[cli] open input: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	raw, err := dataset.Read(filepath.Base(*in), f)
	if err != nil {
		logger.Error("[cli] read %s: %v", *in, err)
		os.Exit(1)
	}

	cleaner := pipeline.NewCleaner(logger, pipeline.ImputeStrategy(cfg.ImputeStrategy), cfg.CoercionTolerance)
	cleaned, report, err := cleaner.Clean(raw)
	if err != nil {
		logger.Error("[cli] clean %s: %v", *in, err)
		os.Exit(1)
	}

	summary := pipeline.Summarize(cleaned, model.FilterState{Bucket: *bucket})
	printReport(report, summary)

	path := *out
	if path == "" {
		path = strings.TrimSuffix(*in, filepath.Ext(*in)) + "_cleaned.csv"
	}
	w, err := export.NewCSVWriter(path)
	if err != nil {
		logger.Error("[cli] create output: %v", err)
		os.Exit(1)
	}
	if err := w.Write(cleaned, nil); err != nil {
		logger.Error("[cli] write cleaned csv: %v", err)
		os.Exit(1)
	}
	w.Close()
	logger.Info("[cli] cleaned dataset written to %s", path)

	if *toPostgres {
		if cfg.PostgresDSN == "" {
			logger.Error("[cli] -postgres requires POSTGRES_DSN to be set")
			os.Exit(1)
		}
		id := uuid.New().String()
		pw, err := export.NewPostgresWriter(cfg.PostgresDSN, id)
		if err != nil {
			logger.Error("[cli] postgres sink: %v", err)
			os.Exit(1)
		}
		defer pw.Close()
		if err := pw.Write(cleaned, nil); err != nil {
			logger.Error("[cli] postgres sink: %v", err)
			os.Exit(1)
		}
		logger.Info("[cli] %d rows written to postgres as dataset %s", cleaned.NumRows(), id)
	}
}

func printReport(report model.CleanReport, s model.Summary) {
	fmt.Println()
	fmt.Println("=== Cleaning Report ===")
	fmt.Printf("  rows in:              %d\n", report.RowsIn)
	fmt.Printf("  rows out:             %d\n", report.RowsOut)
	fmt.Printf("  dropped (no date):    %d\n", report.RowsDroppedNoDate)
	fmt.Printf("  duplicates removed:   %d\n", report.DuplicatesRemoved)
	fmt.Printf("  cells imputed:        %d\n", report.CellsImputed)

	fmt.Println()
	fmt.Println("=== KPI Summary ===")
	fmt.Printf("  total sales:   %.2f\n", s.TotalSales)
	fmt.Printf("  average sale:  %.2f\n", s.AverageSale)
	fmt.Printf("  transactions:  %d\n", s.Transactions)

	printBreakdown("Top Categories", s.CategoryBreakdown)
	printBreakdown("Top Regions", s.RegionBreakdown)

	if len(s.RevenueTrend) > 0 {
		fmt.Println()
		fmt.Println("=== Revenue Trend ===")
		for _, p := range s.RevenueTrend {
			fmt.Printf("  %-10s %12.2f\n", p.Bucket, p.Total)
		}
	}
	fmt.Println()
}

func printBreakdown(title string, groups []model.GroupTotal) {
	if len(groups) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("=== %s ===\n", title)
	for i, g := range groups {
		if i == 5 {
			fmt.Printf("  ... and %d more\n", len(groups)-5)
			break
		}
		fmt.Printf("  %-20s %12.2f  (%d sales)\n", g.Label, g.Total, g.Count)
	}
}
