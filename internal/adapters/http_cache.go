package adapters

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"recs-data/internal/ports"
	"recs-data/internal/shared"
)

// HTTPCacheAdapter downloads published files into a local directory and
// serves them from there afterwards. The cache is a presence check only:
// a file that exists is never revalidated against the remote source.
type HTTPCacheAdapter struct {
	CacheDir string
	Timeout  time.Duration
	Client   *http.Client
}

// NewHTTPCacheAdapter returns a fetcher writing into cacheDir. A
// non-positive timeout leaves requests unbounded.
func NewHTTPCacheAdapter(cacheDir string, timeoutSec int) HTTPCacheAdapter {
	var timeout time.Duration
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	return HTTPCacheAdapter{
		CacheDir: cacheDir,
		Timeout:  timeout,
	}
}

func (a HTTPCacheAdapter) Fetch(ctx context.Context, url string, name string) (string, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || name != filepath.Base(name) {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid cache file name: " + name)
	}
	dir := a.cacheDir()
	path := filepath.Join(dir, name)

	if _, err := os.Stat(path); err == nil {
		log.Debug().Str("path", path).Msg("cache hit")
		return path, true, nil
	} else if !os.IsNotExist(err) {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to stat cache file").
			WithCause(err)
	}

	if strings.TrimSpace(url) == "" {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no source url for " + name)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to create request").
			WithCause(err)
	}
	resp, err := a.client().Do(req)
	if err != nil {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn().
			Err(shared.HTTPStatusError(resp.StatusCode, url)).
			Str("name", name).
			Msg("no data available")
		return "", false, nil
	}

	written, err := writeAtomically(dir, name, resp.Body)
	if err != nil {
		return "", false, err
	}
	log.Info().
		Str("url", url).
		Str("path", path).
		Int64("bytes", written).
		Msg("downloaded")
	return path, true, nil
}

func (a HTTPCacheAdapter) cacheDir() string {
	if strings.TrimSpace(a.CacheDir) == "" {
		return "."
	}
	return a.CacheDir
}

func (a HTTPCacheAdapter) client() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return &http.Client{Timeout: a.Timeout}
}

// writeAtomically streams body into a temporary file next to the target
// and renames it into place, so an interrupted download leaves no file
// behind that the presence check would later trust.
func writeAtomically(dir string, name string, body io.Reader) (int64, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	tmp, err := os.CreateTemp(dir, name+".*.part")
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache file").
			WithCause(err)
	}
	tmpPath := tmp.Name()
	written, copyErr := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(tmpPath)
		cause := copyErr
		if cause == nil {
			cause = closeErr
		}
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write cache file").
			WithCause(cause)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move cache file into place").
			WithCause(err)
	}
	return written, nil
}

var _ ports.FetcherPort = HTTPCacheAdapter{}
