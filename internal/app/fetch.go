package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recs-data/internal/shared"
)

// Fetch makes a table workbook, or the microdata file, available in the
// local cache and returns its path.
func (s Service) Fetch(ctx context.Context, req FetchRequest) (FetchResult, error) {
	if req.Microdata {
		path, err := s.fetchMicrodata(ctx)
		if err != nil {
			return FetchResult{}, err
		}
		return FetchResult{Path: path}, nil
	}
	id := shared.NormalizeTableID(req.Table)
	if id == "" {
		return FetchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("table is required")
	}
	if !s.advertised(id) {
		return FetchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("table " + id + " is not in the catalog")
	}
	path, err := s.fetchWorkbook(ctx, id)
	if err != nil {
		return FetchResult{}, err
	}
	return FetchResult{Path: path}, nil
}

func (s Service) fetchWorkbook(ctx context.Context, id string) (string, error) {
	name := shared.WorkbookFileName(id)
	url := strings.TrimRight(s.BaseURL, "/") + "/" + name
	path, ok, err := s.Fetcher.Fetch(ctx, url, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", noDataError(id)
	}
	return path, nil
}

func (s Service) fetchMicrodata(ctx context.Context) (string, error) {
	path, ok, err := s.Fetcher.Fetch(ctx, s.MicrodataURL, MicrodataFileName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", noDataError("microdata")
	}
	return path, nil
}

func (s Service) advertised(id string) bool {
	if _, ok := s.Catalog.Table(id); ok {
		return true
	}
	for _, source := range s.Catalog.Sources() {
		if source.ID == id {
			return true
		}
	}
	return false
}

func noDataError(what string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("no data available for " + what)
}
