package app

import (
	"context"

	"recs-data/internal/core"
	"recs-data/internal/shared"
	"recs-data/internal/types"
)

// Release reads the release and revision months from the banner of a
// table's data sheet.
func (s Service) Release(ctx context.Context, req ReleaseRequest) (ReleaseResult, error) {
	fetched, err := s.Fetch(ctx, FetchRequest{Table: req.Table})
	if err != nil {
		return ReleaseResult{}, err
	}
	workbook, err := s.Workbooks.Open(fetched.Path)
	if err != nil {
		return ReleaseResult{}, err
	}
	defer workbook.Close()
	sheet, err := workbook.Sheet(types.SheetData)
	if err != nil {
		return ReleaseResult{}, err
	}
	banner, err := sheet.CellValue(core.BannerCell)
	if err != nil {
		return ReleaseResult{}, err
	}
	info, err := core.ParseReleaseBanner(banner)
	if err != nil {
		return ReleaseResult{}, err
	}
	return ReleaseResult{Table: shared.NormalizeTableID(req.Table), Info: info}, nil
}
