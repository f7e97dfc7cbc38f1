package app

import (
	"fmt"
	"strings"

	"recs-data/internal/types"
)

// partialHints explains how to continue a path that stopped on a branch,
// or why a fully specified path produced no value.
func partialHints(resolution types.Resolution) []string {
	if resolution.IsResolved() {
		return nil
	}
	checks := []struct {
		flag      string
		remainder types.Remainder
	}{
		{flag: "--row", remainder: resolution.Rows},
		{flag: "--column", remainder: resolution.Columns},
	}

	var hints []string
	for _, c := range checks {
		if c.remainder.IsLeaf() {
			continue
		}
		hints = append(hints, fmt.Sprintf(
			"hint: extend %s with one of: %s",
			c.flag, strings.Join(c.remainder.Keys, ", "),
		))
	}
	if len(hints) == 0 {
		hints = append(hints, fmt.Sprintf(
			"hint: cell %s%s holds no number (suppressed or empty in the published table)",
			resolution.Columns.Leaf, resolution.Rows.Leaf,
		))
	}
	return hints
}
