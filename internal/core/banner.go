package core

import (
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"recs-data/internal/types"
)

// BannerCell is the header cell carrying the release banner.
const BannerCell = "A1"

var monthYearLayouts = []string{
	"January 2006",
	"Jan 2006",
	"January, 2006",
	"1/2006",
}

// ParseReleaseBanner reads the release and revision months from a table
// banner of the form
//
//	Release date: February 2018
//	Revised: May 2018
//
// Only the first two non-blank lines are read; the label before the
// colon is ignored.
func ParseReleaseBanner(text string) (types.ReleaseInfo, error) {
	lines := bannerLines(text)
	if len(lines) < 2 {
		return types.ReleaseInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release banner must have a release line and a revision line")
	}
	released, err := parseBannerLine(lines[0])
	if err != nil {
		return types.ReleaseInfo{}, err
	}
	revised, err := parseBannerLine(lines[1])
	if err != nil {
		return types.ReleaseInfo{}, err
	}
	return types.ReleaseInfo{ReleasedOn: released, RevisedOn: revised}, nil
}

func bannerLines(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func parseBannerLine(line string) (time.Time, error) {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release banner line has no label: " + strings.TrimSpace(line))
	}
	parsed := parseMonthYear(parts[1])
	if parsed.IsZero() {
		return time.Time{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("release banner date not understood: " + strings.TrimSpace(parts[1]))
	}
	return parsed, nil
}

func parseMonthYear(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range monthYearLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
