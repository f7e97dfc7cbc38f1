package app

import "recs-data/internal/types"

type FindRequest struct {
	Table   string
	Sheet   string
	Rows    types.KeyPath
	Columns types.KeyPath
}

type FindResult struct {
	Table      string
	Sheet      string
	Resolution types.Resolution
	Hints      []string
}

type BrowseResult struct {
	Table   string
	Rows    types.Remainder
	Columns types.Remainder
	// Address is set when both paths end on leaves.
	Address string
	Hints   []string
}

type FetchRequest struct {
	Table     string
	Microdata bool
}

type FetchResult struct {
	Path string
}

type ReleaseRequest struct {
	Table string
}

type ReleaseResult struct {
	Table string
	Info  types.ReleaseInfo
}

type ValidateRequest struct {
	CatalogFiles []string
}

type ValidateResult struct {
	Tables []string
}

type InspectRequest struct {
	Table string
}

// InspectLeaf is one fully specified path of a table tree.
type InspectLeaf struct {
	Path    types.KeyPath
	Address string
}

type InspectResult struct {
	Table   types.TableSource
	Units   float64
	Rows    []InspectLeaf
	Columns []InspectLeaf
}

type MicrodataRequest struct {
	Column string
	Row    int
}

type MicrodataResult struct {
	Column  string
	Row     int
	Value   float64
	Count   int
	Columns []string
}
