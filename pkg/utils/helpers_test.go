package utils

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"42", 42, true},
		{"3.14", 3.14, true},
		{"-7.5", -7.5, true},
		{"$1,234.56", 1234.56, true},
		{"€99", 99, true},
		{"£1,000", 1000, true},
		{"  250  ", 250, true},
		{"", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFormatNumberRoundTrips(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 3.14159, 1234.56, 0.1, 1e6, 33.333333333333336} {
		got, ok := ParseNumber(FormatNumber(f))
		if !ok || got != f {
			t.Errorf("ParseNumber(FormatNumber(%v)) = %v, %v; want the input back", f, got, ok)
		}
	}
}

func TestFormatNumberIsStable(t *testing.T) {
	// Formatting an already-canonical cell must not change it.
	for _, s := range []string{"10", "3.5", "-0.25", "1234.56"} {
		f, ok := ParseNumber(s)
		if !ok {
			t.Fatalf("ParseNumber(%q) failed", s)
		}
		if got := FormatNumber(f); got != s {
			t.Errorf("FormatNumber(ParseNumber(%q)) = %q; want %q", s, got, s)
		}
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0},
		{1.006, 1.01},
		{10, 10},
		{33.33333, 33.33},
		{-2.555, -2.55},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate(short, 10) = %q", got)
	}
	if got := Truncate("a very long label indeed", 10); got != "a very ..." {
		t.Errorf("Truncate = %q; want %q", got, "a very ...")
	}
}
