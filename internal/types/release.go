package types

import "time"

// ReleaseInfo holds the release and revision months printed in the
// banner cell of a published table.
type ReleaseInfo struct {
	ReleasedOn time.Time
	RevisedOn  time.Time
}
