package types

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Frame is a column-indexed view over a CSV file: a header row naming
// the columns and the raw text of every data row.
type Frame struct {
	Columns []string
	Rows    [][]string
	index   map[string]int
}

func NewFrame(columns []string, rows [][]string) Frame {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		key := strings.TrimSpace(name)
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return Frame{Columns: columns, Rows: rows, index: index}
}

func (f Frame) Len() int {
	return len(f.Rows)
}

func (f Frame) HasColumn(name string) bool {
	_, ok := f.index[strings.TrimSpace(name)]
	return ok
}

// Column returns every value of the named column. Short rows yield "".
func (f Frame) Column(name string) ([]string, error) {
	idx, err := f.columnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		if idx < len(row) {
			values[i] = row[idx]
		}
	}
	return values, nil
}

// Float parses the value at (column, row) as a number.
func (f Frame) Float(name string, row int) (float64, error) {
	idx, err := f.columnIndex(name)
	if err != nil {
		return 0, err
	}
	if row < 0 || row >= len(f.Rows) {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("row " + strconv.Itoa(row) + " out of range")
	}
	record := f.Rows[row]
	if idx >= len(record) {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("column " + name + " missing in row " + strconv.Itoa(row))
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("column " + name + " row " + strconv.Itoa(row) + " is not numeric").
			WithCause(err)
	}
	return value, nil
}

func (f Frame) columnIndex(name string) (int, error) {
	idx, ok := f.index[strings.TrimSpace(name)]
	if !ok {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("unknown column " + name)
	}
	return idx, nil
}
