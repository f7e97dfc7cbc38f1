package types

type Axis string

const (
	AxisRows    Axis = "rows"
	AxisColumns Axis = "columns"
)

type ResolutionKind string

const (
	ResolutionResolved ResolutionKind = "resolved"
	ResolutionPartial  ResolutionKind = "partial"
)

// Worksheet names present in every published housing-characteristics
// workbook.
const (
	SheetData = "data"
	SheetRSE  = "rse"
)
