package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/xuri/excelize/v2"

	"recs-data/internal/ports"
)

type ExcelizeWorkbookAdapter struct{}

func NewExcelizeWorkbookAdapter() ExcelizeWorkbookAdapter {
	return ExcelizeWorkbookAdapter{}
}

func (a ExcelizeWorkbookAdapter) Open(path string) (ports.Workbook, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to open workbook: " + path).
			WithCause(err)
	}
	return &excelizeWorkbook{file: file}, nil
}

type excelizeWorkbook struct {
	file *excelize.File
}

func (w *excelizeWorkbook) SheetNames() []string {
	return w.file.GetSheetList()
}

func (w *excelizeWorkbook) Sheet(name string) (ports.Sheet, error) {
	idx, err := w.file.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("workbook has no sheet " + name)
	}
	return excelizeSheet{file: w.file, name: name}, nil
}

func (w *excelizeWorkbook) Close() error {
	return w.file.Close()
}

// excelizeSheet reads the stored cell text rather than the display
// format, so numbers come back with full precision.
type excelizeSheet struct {
	file *excelize.File
	name string
}

func (s excelizeSheet) CellValue(address string) (string, error) {
	return s.file.GetCellValue(s.name, address, excelize.Options{RawCellValue: true})
}

var _ ports.WorkbookLoaderPort = ExcelizeWorkbookAdapter{}
