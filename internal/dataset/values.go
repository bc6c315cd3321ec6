package dataset

import (
	"strings"
	"time"

	"salesboard/pkg/utils"
)

// DateLayout is the canonical cell form for date columns after cleaning.
const DateLayout = "2006-01-02"

// UnknownMarker is what cleaning writes into missing categorical cells.
// Inference skips it like a missing value so a cleaned dataset re-ingests
// with the same column types it was exported with.
const UnknownMarker = "unknown"

// dateLayouts are the input formats accepted during type inference and
// coercion. The canonical layout comes first so cleaned data re-parses fast.
var dateLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// missingMarkers are raw cell values treated as missing, beyond "".
var missingMarkers = map[string]bool{
	"null": true, "n/a": true, "na": true, "nan": true, "none": true, "-": true,
}

// IsMissing reports whether a raw cell counts as a missing value.
func IsMissing(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return missingMarkers[strings.ToLower(s)]
}

// ParseNumber converts a raw cell to float64, tolerating currency prefixes
// and thousands separators.
func ParseNumber(s string) (float64, bool) {
	return utils.ParseNumber(s)
}

// ParseDate converts a raw cell to a date using the accepted layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
