package ports

import "context"

// FetcherPort downloads a remote file into the local cache once.
//
// Fetch returns (path, true, nil) when the file is available locally,
// either from an earlier download or a fresh one. A non-success response
// from the remote source yields ("", false, nil): the caller must treat
// it as "no data available". Transport and filesystem failures are
// returned as errors.
type FetcherPort interface {
	Fetch(ctx context.Context, url string, name string) (string, bool, error)
}
