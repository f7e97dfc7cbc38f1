package types

// TableSchema describes how one published housing-characteristics table
// maps category paths to worksheet cells.
type TableSchema struct {
	// ID is the dataset-table identifier, e.g. "hc1.1". It doubles as the
	// base name of the published workbook.
	ID string

	// Title is the human readable table description.
	Title string

	// Units is the multiplier applied to every raw cell value. The
	// published tables report counts in millions of housing units.
	Units float64

	// Columns maps column categories to column letters.
	Columns *Node

	// Rows maps row categories to row numbers.
	Rows *Node
}

// Tree returns the row or column tree for axis.
func (t TableSchema) Tree(axis Axis) *Node {
	if axis == AxisColumns {
		return t.Columns
	}
	return t.Rows
}

// TableSource is one advertised table of a survey release. Not every
// advertised table has a structure; those can be fetched but not queried.
type TableSource struct {
	Release    string
	ID         string
	Title      string
	Structured bool
}
