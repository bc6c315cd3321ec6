package pipeline

import (
	"testing"

	"salesboard/internal/model"
)

func TestApplyFilterByDateRange(t *testing.T) {
	ds := cleanKPI(t)

	tests := []struct {
		name string
		f    model.FilterState
		want []int
	}{
		{"no predicates", model.FilterState{}, []int{0, 1, 2, 3, 4}},
		{"from only", model.FilterState{From: "2024-02-01"}, []int{3, 4}},
		{"to only", model.FilterState{To: "2024-01-15"}, []int{0, 1}},
		{"inclusive range", model.FilterState{From: "2024-01-15", To: "2024-01-20"}, []int{0, 1, 2}},
		{"empty range", model.FilterState{From: "2025-01-01"}, []int{}},
		{"unparseable from", model.FilterState{From: "garbage"}, []int{}},
		{"unparseable to", model.FilterState{To: "13/13/2024"}, []int{}},
	}

	for _, tt := range tests {
		got := ApplyFilter(ds, tt.f)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %v; want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: got %v; want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestApplyFilterByValues(t *testing.T) {
	ds := cleanKPI(t)

	tests := []struct {
		name string
		f    model.FilterState
		want int
	}{
		{"single category", model.FilterState{Categories: []string{"Classic Cars"}}, 3},
		{"case insensitive", model.FilterState{Categories: []string{"classic cars"}}, 3},
		{"multiple values OR", model.FilterState{Categories: []string{"Planes", "Motorcycles"}}, 2},
		{"fields AND", model.FilterState{Categories: []string{"Classic Cars"}, Regions: []string{"France"}}, 1},
		{"status", model.FilterState{Statuses: []string{"Cancelled"}}, 1},
		{"no match", model.FilterState{Regions: []string{"Atlantis"}}, 0},
	}

	for _, tt := range tests {
		if got := len(ApplyFilter(ds, tt.f)); got != tt.want {
			t.Errorf("%s: matched %d rows; want %d", tt.name, got, tt.want)
		}
	}
}

func TestApplyFilterByYear(t *testing.T) {
	ds, _, err := newTestCleaner().Clean(read(t, `orderdate,productline,year_id,sales
2003-02-24,Classic Cars,2003,100
2004-05-07,Classic Cars,2004,200
2004-08-25,Motorcycles,2004,50
`))
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}

	if got := len(ApplyFilter(ds, model.FilterState{Years: []string{"2004"}})); got != 2 {
		t.Errorf("year filter matched %d rows; want 2", got)
	}

	opts := Options(ds)
	if len(opts.Years) != 2 || opts.Years[0] != "2003" || opts.Years[1] != "2004" {
		t.Errorf("Years = %v; want [2003 2004]", opts.Years)
	}
}

func TestApplyFilterOnAbsentColumn(t *testing.T) {
	// No status column: a status predicate can match nothing.
	ds, _, err := newTestCleaner().Clean(read(t, "date,category,amount\n2024-01-01,A,10\n"))
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := len(ApplyFilter(ds, model.FilterState{Statuses: []string{"Shipped"}})); got != 0 {
		t.Errorf("matched %d rows on an absent column; want 0", got)
	}

	// A date range against a dataset with no date column matches nothing too.
	dateless, _, err := newTestCleaner().Clean(read(t, "category,amount\nA,10\nB,20\n"))
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if got := len(ApplyFilter(dateless, model.FilterState{From: "2024-01-01"})); got != 0 {
		t.Errorf("matched %d rows on an absent date column; want 0", got)
	}
}

func TestApplyFilterDoesNotMutate(t *testing.T) {
	ds := cleanKPI(t)
	before := ds.Clone()

	ApplyFilter(ds, model.FilterState{From: "2024-02-01", Categories: []string{"Planes"}})

	if !ds.Equal(before) {
		t.Fatal("ApplyFilter mutated the dataset")
	}
}

func TestOptions(t *testing.T) {
	opts := Options(cleanKPI(t))

	wantCats := []string{"Classic Cars", "Motorcycles", "Planes"}
	if len(opts.Categories) != len(wantCats) {
		t.Fatalf("Categories = %v; want %v", opts.Categories, wantCats)
	}
	for i, want := range wantCats {
		if opts.Categories[i] != want {
			t.Errorf("Categories[%d] = %q; want %q", i, opts.Categories[i], want)
		}
	}
	if len(opts.Regions) != 3 {
		t.Errorf("Regions = %v; want 3 values", opts.Regions)
	}
	if opts.DateMin != "2024-01-15" || opts.DateMax != "2024-02-10" {
		t.Errorf("date range = %s..%s; want 2024-01-15..2024-02-10", opts.DateMin, opts.DateMax)
	}
}
