package export

import "salesboard/internal/dataset"

// DatasetWriter is the interface any export backend must satisfy. rows is
// the filtered view to export; nil means all rows.
type DatasetWriter interface {
	Write(ds *dataset.Dataset, rows []int) error
	Close() error
}
