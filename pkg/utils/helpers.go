package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber converts a raw cell to a float64. It tolerates thousands
// separators and common currency prefixes ("$1,234.56" → 1234.56).
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	for _, prefix := range []string{"$", "€", "£"} {
		s = strings.TrimPrefix(s, prefix)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FormatNumber renders a float64 in the canonical cell form used by the
// cleaned dataset. The -1 precision round-trips through ParseNumber exactly.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Round2 rounds to 2 decimal places, for display-facing KPI values.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Truncate shortens a string for report output.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
