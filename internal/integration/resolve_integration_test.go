package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recs-data/internal/adapters"
	"recs-data/internal/core"
	"recs-data/internal/types"
	"recs-data/tests/testutil"
)

func TestResolveIntegration(t *testing.T) {
	catalog, err := adapters.NewSchemaCatalogAdapter()
	require.NoError(t, err)
	table, ok := catalog.Table("hc1.1")
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "hc1.1.xlsx")
	testutil.WriteHousingWorkbook(t, path)
	workbook, err := adapters.NewExcelizeWorkbookAdapter().Open(path)
	require.NoError(t, err)
	defer workbook.Close()
	assert.Equal(t, []string{types.SheetData, types.SheetRSE}, workbook.SheetNames())

	data, err := workbook.Sheet(types.SheetData)
	require.NoError(t, err)
	rse, err := workbook.Sheet(types.SheetRSE)
	require.NoError(t, err)

	resolver := core.NewPathResolverCore()
	tests := []struct {
		name    string
		sheet   string
		rows    types.KeyPath
		columns types.KeyPath
		want    types.Resolution
	}{
		{
			name:    "total housing units",
			rows:    types.Key("total"),
			columns: types.Key("total"),
			want:    types.Resolved("B6", 118_200_000.0),
		},
		{
			name:    "single family attached",
			rows:    types.Key("total"),
			columns: types.KeyPath{"unit-type", "single-family-attached"},
			want:    types.Resolved("D6", 7_000_000.0),
		},
		{
			name:    "electric main space heating",
			rows:    types.KeyPath{"electric-end-use", "space-heating", "main"},
			columns: types.Key("total"),
			want:    types.Resolved("B15", 40_400_000.0),
		},
		{
			name:    "column path stops at branch",
			rows:    types.Key("total"),
			columns: types.Key("unit-type"),
			want: types.Partial(
				types.Remainder{Leaf: "6"},
				types.Remainder{Keys: []string{"single-family-detached", "single-family-attached", "apartment-small", "apartment-large", "mobile-home"}},
			),
		},
		{
			name:    "relative standard error",
			sheet:   types.SheetRSE,
			rows:    types.Key("total"),
			columns: types.KeyPath{"unit-type", "single-family-detached"},
			want:    types.Resolved("C6", 600_000.0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := data
			if tt.sheet == types.SheetRSE {
				sheet = rse
			}
			got, err := resolver.Resolve(t.Context(), sheet, table, tt.rows, tt.columns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
