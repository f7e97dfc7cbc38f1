package app

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"recs-data/internal/types"
)

// Tables lists every table advertised by the catalog.
func (s Service) Tables() []types.TableSource {
	return s.Catalog.Sources()
}

// Inspect lists every fully specified row and column path of a table
// together with the row number or column letters it reaches.
func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	table, err := s.structuredTable(req.Table)
	if err != nil {
		return InspectResult{}, err
	}
	source, ok := s.source(table.ID)
	if !ok {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("table " + table.ID + " has a structure but no catalog entry")
	}
	return InspectResult{
		Table:   source,
		Units:   table.Units,
		Rows:    leaves(table.Rows),
		Columns: leaves(table.Columns),
	}, nil
}

func (s Service) source(id string) (types.TableSource, bool) {
	for _, source := range s.Catalog.Sources() {
		if source.ID == id {
			return source, true
		}
	}
	return types.TableSource{}, false
}

func leaves(root *types.Node) []InspectLeaf {
	var out []InspectLeaf
	root.Walk(func(path types.KeyPath, leaf string) {
		out = append(out, InspectLeaf{Path: path, Address: leaf})
	})
	return out
}
