package store

import (
	"io"

	"github.com/BarkinBalci/funnel-analytics-service/internal/domain"
)

// DatasetStore manages the current active event dataset.
//
// Active always yields a usable table: the promoted current dataset when one
// exists, otherwise the bundled sample. The table is reloaded from its file
// on every call; callers get a fresh, independent copy each time.
type DatasetStore interface {
	// Active loads the current active dataset, falling back to the sample.
	Active() (domain.EventTable, error)

	// SaveUpload persists a raw uploaded CSV and returns the saved path.
	// The upload is not promoted; callers validate it first.
	SaveUpload(filename string, r io.Reader) (string, error)

	// Promote makes a normalized table the current active dataset.
	Promote(table domain.EventTable) error

	// Reset removes the current dataset so Active falls back to the sample.
	Reset() error
}
