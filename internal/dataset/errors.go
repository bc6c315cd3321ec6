package dataset

import "fmt"

// DataFormatError reports an upload that cannot be processed at all:
// an empty or unparseable file, a missing required column, or coercion
// failures beyond the tolerated threshold. Per-cell problems inside an
// otherwise usable file never produce this error.
type DataFormatError struct {
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("data format error: %s", e.Reason)
}

// NewDataFormatError builds a DataFormatError with a formatted reason.
func NewDataFormatError(format string, args ...any) *DataFormatError {
	return &DataFormatError{Reason: fmt.Sprintf(format, args...)}
}
