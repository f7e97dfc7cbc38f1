package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recs-data/internal/adapters"
)

// Validate loads catalog files on top of the compiled-in catalog and
// reports the structured tables that result. Nothing is fetched.
func (s Service) Validate(_ context.Context, req ValidateRequest) (ValidateResult, error) {
	if len(req.CatalogFiles) == 0 {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one catalog file is required")
	}
	catalog, err := adapters.NewSchemaCatalogAdapter()
	if err != nil {
		return ValidateResult{}, err
	}
	for _, path := range req.CatalogFiles {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if err := catalog.LoadOverlay(path); err != nil {
			return ValidateResult{}, err
		}
	}
	var tables []string
	for _, source := range catalog.Sources() {
		if source.Structured {
			tables = append(tables, source.ID)
		}
	}
	sort.Strings(tables)
	return ValidateResult{Tables: tables}, nil
}
