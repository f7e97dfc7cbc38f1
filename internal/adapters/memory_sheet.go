package adapters

import (
	"strings"

	"recs-data/internal/ports"
)

// MemorySheet is a Sheet backed by a map of A1 addresses. The zero value
// is an empty sheet, which is what schema browsing reads from.
type MemorySheet map[string]string

func (s MemorySheet) CellValue(address string) (string, error) {
	return s[strings.ToUpper(strings.TrimSpace(address))], nil
}

var _ ports.Sheet = MemorySheet(nil)
