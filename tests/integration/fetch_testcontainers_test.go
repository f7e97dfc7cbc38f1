//go:build integration

package integration

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"recs-data/internal/app"
	"recs-data/internal/types"
	"recs-data/tests/testutil"
)

func TestFindAgainstWorkbookServerWithTestcontainers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers e2e in short mode")
	}

	ctx := t.Context()
	workbook := filepath.Join(t.TempDir(), "hc1.1.xlsx")
	testutil.WriteHousingWorkbook(t, workbook)
	baseURL, cleanup := startWorkbookServer(ctx, t, workbook)
	t.Cleanup(cleanup)

	cacheDir := t.TempDir()
	service, err := app.NewService(app.Config{CacheDir: cacheDir, BaseURL: baseURL, HTTPTimeout: 30})
	require.NoError(t, err)

	fetched, err := service.Fetch(ctx, app.FetchRequest{Table: "hc1.1"})
	require.NoError(t, err)
	require.FileExists(t, fetched.Path)
	require.Equal(t, filepath.Join(cacheDir, "hc1.1.xlsx"), fetched.Path)

	result, err := service.Find(ctx, app.FindRequest{
		Table:   "hc1.1",
		Rows:    types.KeyPath{"fuel-used", "natural-gas"},
		Columns: types.Key("total"),
	})
	require.NoError(t, err)
	require.True(t, result.Resolution.IsResolved())
	require.Equal(t, 68_600_000.0, result.Resolution.Value)

	release, err := service.Release(ctx, app.ReleaseRequest{Table: "hc1.1"})
	require.NoError(t, err)
	require.Equal(t, 2018, release.Info.ReleasedOn.Year())

	_, err = service.Fetch(ctx, app.FetchRequest{Table: "hc1.2"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

// TestMicrodataFromPublisher reads the published household microdata.
// It needs network access to the publisher.
func TestMicrodataFromPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping network test in short mode")
	}

	service, err := app.NewService(app.Config{CacheDir: t.TempDir(), HTTPTimeout: 120})
	require.NoError(t, err)
	result, err := service.Microdata(t.Context(), app.MicrodataRequest{Column: "LPXBTU", Row: 0})
	require.NoError(t, err)
	require.Equal(t, 91.33, result.Value)
}

func startWorkbookServer(ctx context.Context, t *testing.T, workbook string) (string, func()) {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image:        "python:3.12-alpine",
		ExposedPorts: []string{"8080/tcp"},
		Cmd:          []string{"python", "-m", "http.server", "8080", "--directory", "/srv"},
		Files: []testcontainers.ContainerFile{
			{
				HostFilePath:      workbook,
				ContainerFilePath: "/srv/hc/" + filepath.Base(workbook),
				FileMode:          0o644,
			},
		},
		WaitingFor: wait.ForListeningPort("8080/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s/hc/", host, port.Port()), func() {
		_ = container.Terminate(ctx)
	}
}
