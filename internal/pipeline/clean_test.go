package pipeline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"salesboard/internal/dataset"
	"salesboard/internal/export"
	"salesboard/internal/model"
)

func read(t *testing.T, csv string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	return ds
}

func newTestCleaner() *Cleaner { return NewCleaner(nil, ImputeMean, 0.5) }

func TestCleanDropsRowsWithoutDate(t *testing.T) {
	ds := read(t, `date,category,amount
2024-01-01,A,10
,B,5
garbage,C,7
2024-01-02,D,3
`)
	cleaned, report, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if cleaned.NumRows() != 2 {
		t.Fatalf("NumRows = %d; want 2", cleaned.NumRows())
	}
	if report.RowsDroppedNoDate != 2 {
		t.Errorf("RowsDroppedNoDate = %d; want 2", report.RowsDroppedNoDate)
	}
	if report.RowsIn != 4 || report.RowsOut != 2 {
		t.Errorf("report rows = %d in, %d out; want 4 in, 2 out", report.RowsIn, report.RowsOut)
	}
}

func TestCleanTotalCountsOnlySurvivors(t *testing.T) {
	// One valid row and one with a missing date: the summary counts only
	// the surviving row.
	ds := read(t, "date,category,amount\n2024-01-01,A,10\n,B,5\n")
	cleaned, _, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if cleaned.NumRows() != 1 {
		t.Fatalf("NumRows = %d; want 1", cleaned.NumRows())
	}
	s := Summarize(cleaned, emptyFilter())
	if s.TotalSales != 10 {
		t.Errorf("TotalSales = %v; want 10", s.TotalSales)
	}
	if s.Transactions != 1 {
		t.Errorf("Transactions = %d; want 1", s.Transactions)
	}
}

func TestCleanCollapsesDuplicates(t *testing.T) {
	ds := read(t, `date,category,amount
2024-01-01,A,10
2024-01-01,A,10
2024-01-01,A,10
2024-01-02,B,5
`)
	cleaned, report, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if cleaned.NumRows() != 2 {
		t.Fatalf("NumRows = %d; want 2", cleaned.NumRows())
	}
	if report.DuplicatesRemoved != 2 {
		t.Errorf("DuplicatesRemoved = %d; want 2", report.DuplicatesRemoved)
	}
}

func TestCleanImputesMissingAmounts(t *testing.T) {
	ds := read(t, `date,category,amount
2024-01-01,A,10
2024-01-02,B,
2024-01-03,C,20
`)
	cleaned, report, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	// Mean of the parseable cells (10, 20) fills the gap.
	if got := cleaned.Cell(1, cleaned.Schema.AmountCol); got != "15" {
		t.Errorf("imputed cell = %q; want %q", got, "15")
	}
	if report.CellsImputed == 0 {
		t.Error("CellsImputed = 0; want at least 1")
	}

	s := Summarize(cleaned, emptyFilter())
	if s.TotalSales != 45 {
		t.Errorf("TotalSales = %v; want 45", s.TotalSales)
	}
}

func TestCleanImputeZeroStrategy(t *testing.T) {
	c := NewCleaner(nil, ImputeZero, 0.5)
	ds := read(t, "date,category,amount\n2024-01-01,A,10\n2024-01-02,B,\n")
	cleaned, _, err := c.Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := cleaned.Cell(1, cleaned.Schema.AmountCol); got != "0" {
		t.Errorf("imputed cell = %q; want %q", got, "0")
	}
}

func TestCleanFillsMissingCategoricals(t *testing.T) {
	ds := read(t, `date,category,region,amount
2024-01-01,A,North,10
2024-01-02,,South,5
2024-01-03,N/A,,7
`)
	cleaned, _, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := cleaned.Cell(1, cleaned.Schema.ProductCol); got != UnknownMarker {
		t.Errorf("missing category = %q; want %q", got, UnknownMarker)
	}
	if got := cleaned.Cell(2, cleaned.Schema.ProductCol); got != UnknownMarker {
		t.Errorf("n/a category = %q; want %q", got, UnknownMarker)
	}
	if got := cleaned.Cell(2, cleaned.Schema.RegionCol); got != UnknownMarker {
		t.Errorf("missing region = %q; want %q", got, UnknownMarker)
	}
}

func TestCleanNormalizesCells(t *testing.T) {
	ds := read(t, "date,category,amount\n2024/01/15,  A ,\"$1,234.50\"\n")
	cleaned, _, err := newTestCleaner().Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := cleaned.Cell(0, cleaned.Schema.DateCol); got != "2024-01-15" {
		t.Errorf("date cell = %q; want 2024-01-15", got)
	}
	if got := cleaned.Cell(0, cleaned.Schema.AmountCol); got != "1234.5" {
		t.Errorf("amount cell = %q; want 1234.5", got)
	}
	if got := cleaned.Cell(0, cleaned.Schema.ProductCol); got != "A" {
		t.Errorf("category cell = %q; want trimmed A", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	ds := read(t, `ORDERDATE,PRODUCTLINE,COUNTRY,STATUS,SALES
2024-01-15,Classic Cars,USA,Shipped,"$2,871.00"
2024-01-16,Motorcycles,,Shipped,2765.9
2024-01-17,Classic Cars,USA,,
,Planes,Germany,Shipped,1553.2
2024-01-16,Motorcycles,,Shipped,2765.9
`)
	c := newTestCleaner()
	once, _, err := c.Clean(ds)
	if err != nil {
		t.Fatalf("first Clean failed: %v", err)
	}
	twice, report, err := c.Clean(once)
	if err != nil {
		t.Fatalf("second Clean failed: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatal("second cleaning pass changed the dataset")
	}
	if report.RowsDroppedNoDate != 0 || report.DuplicatesRemoved != 0 || report.CellsImputed != 0 {
		t.Errorf("second pass did work: %+v", report)
	}
}

func TestCleanIdempotentWithSparseSecondaryDate(t *testing.T) {
	// A non-role date column with missing cells gets "unknown" fills; the
	// column must still classify as a date column when the cleaned output is
	// re-ingested, or the round trip changes the schema.
	ds := read(t, `orderdate,productline,ship_date,sales
2024-01-01,A,2024-01-05,10
2024-01-02,B,,20
2024-01-03,C,2024-01-06,30
2024-01-04,D,,40
`)
	shipCol := 2
	if got := ds.Schema.Columns[shipCol].Type; got != dataset.TypeDate {
		t.Fatalf("ship_date inferred as %v; want date", got)
	}

	c := newTestCleaner()
	once, _, err := c.Clean(ds)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := once.Cell(1, shipCol); got != UnknownMarker {
		t.Fatalf("missing ship_date cell = %q; want %q", got, UnknownMarker)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, once, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	reingested, err := dataset.ReadCSV(&buf)
	if err != nil {
		t.Fatalf("re-ingest failed: %v", err)
	}
	if got := reingested.Schema.Columns[shipCol].Type; got != dataset.TypeDate {
		t.Fatalf("re-ingested ship_date inferred as %v; want date", got)
	}

	recleaned, report, err := c.Clean(reingested)
	if err != nil {
		t.Fatalf("re-clean failed: %v", err)
	}
	if !once.Equal(recleaned) {
		t.Fatal("export, re-ingest, re-clean did not reproduce the dataset")
	}
	if report.RowsDroppedNoDate != 0 || report.DuplicatesRemoved != 0 || report.CellsImputed != 0 {
		t.Errorf("re-cleaning exported data did work: %+v", report)
	}
}

func TestCleanErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"no amount column", "date,category\n2024-01-01,A\n"},
		{"no valid dates", "date,category,amount\n,A,10\nbad,B,5\n"},
		{"amounts beyond tolerance", "date,category,amount\n2024-01-01,A,x\n2024-01-02,B,y\n2024-01-03,C,10\n"},
	}
	for _, tt := range tests {
		_, _, err := newTestCleaner().Clean(read(t, tt.csv))
		var dfe *dataset.DataFormatError
		if !errors.As(err, &dfe) {
			t.Errorf("%s: err = %v; want DataFormatError", tt.name, err)
		}
	}
}

func emptyFilter() model.FilterState { return model.FilterState{} }
