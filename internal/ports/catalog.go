package ports

import "recs-data/internal/types"

// CatalogPort exposes the table schemas known to the process.
//
// The compiled-in catalog is always the first layer. LoadOverlay adds a
// catalog file on top of it; a table id defined by a later layer replaces
// the earlier definition as a whole.
type CatalogPort interface {
	LoadOverlay(path string) error
	Table(id string) (types.TableSchema, bool)
	Sources() []types.TableSource
}
