package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recs-data/internal/core"
	"recs-data/internal/types"
	"recs-data/tests/testutil"
)

// unreachableURL makes any download attempt fail with a transport error.
const unreachableURL = "http://127.0.0.1:1/hc/"

func newCachedService(t *testing.T) Service {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteHousingWorkbook(t, filepath.Join(dir, "hc1.1.xlsx"))
	service, err := NewService(Config{CacheDir: dir, BaseURL: unreachableURL, MicrodataURL: unreachableURL})
	require.NoError(t, err)
	return service
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name    string
		rows    types.KeyPath
		columns types.KeyPath
		want    float64
	}{
		{name: "total", rows: types.Key("total"), columns: types.Key("total"), want: 118_200_000.0},
		{name: "single family detached", rows: types.Key("total"), columns: types.KeyPath{"unit-type", "single-family-detached"}, want: 73_900_000.0},
		{name: "natural gas", rows: types.KeyPath{"fuel-used", "natural-gas"}, columns: types.Key("total"), want: 68_600_000.0},
	}
	service := newCachedService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.Find(context.Background(), FindRequest{Table: "hc1.1", Rows: tt.rows, Columns: tt.columns})
			require.NoError(t, err)
			require.True(t, result.Resolution.IsResolved(), "got %s", result.Resolution)
			assert.Equal(t, tt.want, result.Resolution.Value)
			assert.Equal(t, types.SheetData, result.Sheet)
			assert.Empty(t, result.Hints)
		})
	}
}

func TestFindIncompletePathReturnsChildren(t *testing.T) {
	service := newCachedService(t)
	result, err := service.Find(context.Background(), FindRequest{
		Table:   "1.1",
		Rows:    types.KeyPath{"electric-end-use", "space-heating"},
		Columns: types.Key("total"),
	})
	require.NoError(t, err)
	want := types.Partial(
		types.Remainder{Keys: []string{"total", "main", "secondary"}},
		types.Remainder{Leaf: "B"},
	)
	if diff := cmp.Diff(want, result.Resolution); diff != "" {
		t.Fatalf("unexpected resolution (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"hint: extend --row with one of: total, main, secondary"}, result.Hints)
}

func TestFindIncompletePathDoesNotDownload(t *testing.T) {
	service, err := NewService(Config{CacheDir: t.TempDir(), BaseURL: unreachableURL})
	require.NoError(t, err)
	result, err := service.Find(context.Background(), FindRequest{Table: "hc1.1", Rows: types.Key("fuel-used"), Columns: types.Key("total")})
	require.NoError(t, err)
	assert.Equal(t, []string{"electricity", "natural-gas", "propane", "wood", "fuel-oil"}, result.Resolution.Rows.Keys)
}

func TestFindSuppressedCell(t *testing.T) {
	service := newCachedService(t)
	result, err := service.Find(context.Background(), FindRequest{
		Table:   "hc1.1",
		Rows:    types.Key("electric-end-use"),
		Columns: types.Key("total"),
	})
	require.NoError(t, err)
	assert.False(t, result.Resolution.IsResolved())

	result, err = service.Find(context.Background(), FindRequest{
		Table:   "hc1.1",
		Rows:    types.KeyPath{"electric-end-use", "air-conditioning"},
		Columns: types.Key("total"),
	})
	require.NoError(t, err)
	assert.Equal(t, types.Partial(types.Remainder{Leaf: "17"}, types.Remainder{Leaf: "B"}), result.Resolution)
	require.Len(t, result.Hints, 1)
	assert.Contains(t, result.Hints[0], "cell B17 holds no number")
}

func TestFindRelativeStandardErrorSheet(t *testing.T) {
	service := newCachedService(t)
	result, err := service.Find(context.Background(), FindRequest{
		Table:   "hc1.1",
		Sheet:   types.SheetRSE,
		Rows:    types.KeyPath{"fuel-used", "natural-gas"},
		Columns: types.Key("total"),
	})
	require.NoError(t, err)
	require.True(t, result.Resolution.IsResolved())
	assert.Equal(t, 900_000.0, result.Resolution.Value)
}

func TestFindErrors(t *testing.T) {
	tests := []struct {
		name       string
		req        FindRequest
		code       errbuilder.ErrCode
		missingKey bool
	}{
		{
			name:       "unknown row key",
			req:        FindRequest{Table: "hc1.1", Rows: types.Key("fuel-use"), Columns: types.Key("total")},
			code:       errbuilder.CodeNotFound,
			missingKey: true,
		},
		{
			name:       "unknown column key",
			req:        FindRequest{Table: "hc1.1", Rows: types.Key("total"), Columns: types.KeyPath{"unit-type", "duplex"}},
			code:       errbuilder.CodeNotFound,
			missingKey: true,
		},
		{
			name: "unknown table",
			req:  FindRequest{Table: "hc9.9", Rows: types.Key("total"), Columns: types.Key("total")},
			code: errbuilder.CodeNotFound,
		},
		{
			name: "table without structure",
			req:  FindRequest{Table: "hc1.2", Rows: types.Key("total"), Columns: types.Key("total")},
			code: errbuilder.CodeFailedPrecondition,
		},
		{
			name: "missing table",
			req:  FindRequest{Rows: types.Key("total"), Columns: types.Key("total")},
			code: errbuilder.CodeInvalidArgument,
		},
		{
			name: "unknown sheet",
			req:  FindRequest{Table: "hc1.1", Sheet: "summary", Rows: types.Key("total"), Columns: types.Key("total")},
			code: errbuilder.CodeNotFound,
		},
	}
	service := newCachedService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Find(context.Background(), tt.req)
			require.Error(t, err)
			if diff := cmp.Diff(tt.code, errbuilder.CodeOf(err)); diff != "" {
				t.Fatalf("unexpected error code (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.missingKey, core.IsMissingKey(err))
		})
	}
}

func TestFindNoDataAvailable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	service, err := NewService(Config{CacheDir: t.TempDir(), BaseURL: server.URL + "/hc/"})
	require.NoError(t, err)
	_, err = service.Find(context.Background(), FindRequest{Table: "hc1.1", Rows: types.Key("total"), Columns: types.Key("total")})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.False(t, core.IsMissingKey(err))
}

func TestBrowse(t *testing.T) {
	service, err := NewService(Config{CacheDir: t.TempDir(), BaseURL: unreachableURL})
	require.NoError(t, err)

	result, err := service.Browse(context.Background(), FindRequest{Table: "hc1.1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"total", "unit-type"}, result.Columns.Keys)
	assert.Len(t, result.Rows.Keys, 7)
	assert.Empty(t, result.Address)
	assert.Len(t, result.Hints, 2)

	result, err = service.Browse(context.Background(), FindRequest{
		Table:   "hc1.1",
		Rows:    types.KeyPath{"wood-end-use", "water-heating"},
		Columns: types.KeyPath{"unit-type", "mobile-home"},
	})
	require.NoError(t, err)
	assert.Equal(t, "G38", result.Address)
}
