package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"recs-data/internal/adapters"
	"recs-data/internal/shared"
	"recs-data/internal/types"
)

// Find resolves a row path and a column path of a table to a published
// figure. Paths are checked against the schema before anything is
// downloaded: an unknown key fails and a path that stops on a branch is
// answered from the schema alone.
func (s Service) Find(ctx context.Context, req FindRequest) (FindResult, error) {
	table, err := s.structuredTable(req.Table)
	if err != nil {
		return FindResult{}, err
	}
	sheetName := strings.TrimSpace(req.Sheet)
	if sheetName == "" {
		sheetName = types.SheetData
	}

	planned, err := s.Resolver.Resolve(ctx, adapters.MemorySheet(nil), table, req.Rows, req.Columns)
	if err != nil {
		return FindResult{}, err
	}
	result := FindResult{Table: table.ID, Sheet: sheetName}
	if !planned.Rows.IsLeaf() || !planned.Columns.IsLeaf() {
		result.Resolution = planned
		result.Hints = partialHints(planned)
		return result, nil
	}

	path, err := s.fetchWorkbook(ctx, table.ID)
	if err != nil {
		return FindResult{}, err
	}
	workbook, err := s.Workbooks.Open(path)
	if err != nil {
		return FindResult{}, err
	}
	defer workbook.Close()
	sheet, err := workbook.Sheet(sheetName)
	if err != nil {
		return FindResult{}, err
	}

	resolution, err := s.Resolver.Resolve(ctx, sheet, table, req.Rows, req.Columns)
	if err != nil {
		return FindResult{}, err
	}
	result.Resolution = resolution
	result.Hints = partialHints(resolution)
	log.Debug().
		Str("table", table.ID).
		Str("sheet", sheetName).
		Str("rows", req.Rows.String()).
		Str("columns", req.Columns.String()).
		Str("kind", string(resolution.Kind)).
		Msg("find")
	return result, nil
}

// Browse walks the schema only, without touching the workbook.
func (s Service) Browse(ctx context.Context, req FindRequest) (BrowseResult, error) {
	table, err := s.structuredTable(req.Table)
	if err != nil {
		return BrowseResult{}, err
	}
	resolution, err := s.Resolver.Resolve(ctx, adapters.MemorySheet(nil), table, req.Rows, req.Columns)
	if err != nil {
		return BrowseResult{}, err
	}
	result := BrowseResult{
		Table:   table.ID,
		Rows:    resolution.Rows,
		Columns: resolution.Columns,
		Hints:   partialHints(resolution),
	}
	if resolution.Rows.IsLeaf() && resolution.Columns.IsLeaf() {
		result.Address = resolution.Columns.Leaf + resolution.Rows.Leaf
	}
	return result, nil
}

func (s Service) structuredTable(id string) (types.TableSchema, error) {
	normalized := shared.NormalizeTableID(id)
	if normalized == "" {
		return types.TableSchema{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("table is required")
	}
	table, ok := s.Catalog.Table(normalized)
	if ok {
		return table, nil
	}
	for _, source := range s.Catalog.Sources() {
		if source.ID == normalized {
			return types.TableSchema{}, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("table " + normalized + " has no structure in the catalog; provide one with --catalog")
		}
	}
	return types.TableSchema{}, errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("table " + normalized + " is not in the catalog")
}
