package rank

import (
	"slices"
	"strings"
	"time"

	"jobboerse-cli/internal/domain"
)

// Accepted modification timestamp layouts. Single-digit month/day/hour
// parse too, so "2024-03-2" sorts before "2024-03-10".
var timestampLayouts = []string{
	"2006-1-2T15:04:05Z07:00",
	"2006-1-2T15:04:05",
	"2006-1-2 15:04:05Z07:00",
	"2006-1-2 15:04:05",
	"2006-1-2",
}

// ParseModified parses an upstream modification timestamp. Timestamps
// without a zone are read as UTC.
func ParseModified(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.NA {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ByModified is the one ordering used for "latest": calendar time, newest
// first, unparseable timestamps last. It returns a negative number when a
// sorts before b and 0 when neither is newer.
func ByModified(a, b string) int {
	ta, okA := ParseModified(a)
	tb, okB := ParseModified(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}

// SortByModified orders jobs newest first. Ties keep their relative order.
func SortByModified(jobs []domain.JobSummary) {
	slices.SortStableFunc(jobs, func(x, y domain.JobSummary) int {
		return ByModified(x.Modified, y.Modified)
	})
}

// Latest returns the newest item under ByModified; the first one wins a tie.
func Latest[T any](items []T, modified func(T) string) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}
	best = items[0]
	for _, it := range items[1:] {
		if ByModified(modified(it), modified(best)) < 0 {
			best = it
		}
	}
	return best, true
}

// Top returns at most n leading jobs.
func Top(jobs []domain.JobSummary, n int) []domain.JobSummary {
	if n < 0 || n >= len(jobs) {
		return jobs
	}
	return jobs[:n]
}
