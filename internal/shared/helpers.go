// Package shared provides common utility functions used across multiple
// packages in the recs-data codebase.
package shared

import (
	"fmt"
	"strings"
)

// tablePrefix marks housing-characteristics tables in the published
// file names ("hc1.1.xlsx").
const tablePrefix = "hc"

// NormalizeTableID lowercases a table identifier and adds the "hc"
// prefix when the caller passed only the table number, so "1.1",
// "HC1.1" and " hc1.1 " all name the same table.
func NormalizeTableID(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	if lower == "" {
		return ""
	}
	if lower[0] >= '0' && lower[0] <= '9' {
		return tablePrefix + lower
	}
	return lower
}

// WorkbookFileName returns the published file name of a table.
func WorkbookFileName(tableID string) string {
	return NormalizeTableID(tableID) + ".xlsx"
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}
