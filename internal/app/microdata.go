package app

import (
	"context"
	"strings"
)

// Microdata loads the microdata file and reads one numeric value. With
// no column the result only lists the available columns.
func (s Service) Microdata(ctx context.Context, req MicrodataRequest) (MicrodataResult, error) {
	path, err := s.fetchMicrodata(ctx)
	if err != nil {
		return MicrodataResult{}, err
	}
	frame, err := s.FrameLoader.Load(path)
	if err != nil {
		return MicrodataResult{}, err
	}
	result := MicrodataResult{
		Column:  strings.TrimSpace(req.Column),
		Row:     req.Row,
		Count:   frame.Len(),
		Columns: frame.Columns,
	}
	if result.Column == "" {
		return result, nil
	}
	value, err := frame.Float(result.Column, req.Row)
	if err != nil {
		return MicrodataResult{}, err
	}
	result.Value = value
	return result, nil
}
