// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// HousingBanner is the banner written into the fixture workbook.
const HousingBanner = "Release date: February 2018\nRevised: May 2018"

// housingCells mirrors the published figures of table HC1.1 for the
// cells the tests query, in millions of housing units.
var housingCells = map[string]map[string]any{
	"data": {
		"A1":  HousingBanner,
		"B6":  118.2,
		"C6":  73.9,
		"D6":  7.0,
		"B8":  118.2,
		"B9":  68.6,
		"B14": 42.5,
		"B15": 40.4,
		"B16": 2.1,
		"B17": "Q",
	},
	"rse": {
		"A1": HousingBanner,
		"B6": 0,
		"C6": 0.6,
		"B9": 0.9,
	},
}

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteHousingWorkbook writes a small HC1.1 look-alike workbook with a
// "data" and an "rse" sheet to path.
func WriteHousingWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "data"))
	_, err := f.NewSheet("rse")
	require.NoError(t, err)
	for sheet, cells := range housingCells {
		for address, value := range cells {
			require.NoError(t, f.SetCellValue(sheet, address, value))
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, f.SaveAs(path))
}
