package ports

// Sheet reads raw cell values by A1-style address ("B6"). Empty cells
// read as "".
type Sheet interface {
	CellValue(address string) (string, error)
}

// Workbook is an opened spreadsheet file.
type Workbook interface {
	SheetNames() []string
	Sheet(name string) (Sheet, error)
	Close() error
}

type WorkbookLoaderPort interface {
	Open(path string) (Workbook, error)
}
