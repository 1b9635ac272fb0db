package launch

import (
	"context"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/five82/launchtrack/internal/spacex"
)

const (
	// DefaultRecentLimit is how many past launches the browse view keeps.
	DefaultRecentLimit = 20
	// DefaultSearchLimit is how many past launches a search scans.
	DefaultSearchLimit = 50
)

// LoadUpcoming fetches upcoming launches, soonest first. A failed fetch is
// logged and yields an empty slice plus the error.
func LoadUpcoming(ctx context.Context, src spacex.Source, log logrus.FieldLogger) ([]Launch, error) {
	raw, err := src.UpcomingLaunches(ctx)
	if err != nil {
		reportFetch(log, "upcoming launches", err)
		return []Launch{}, err
	}
	launches := FromAPIList(raw)
	SortAscending(launches)
	return launches, nil
}

// LoadPast fetches past launches, most recent first, keeping at most limit.
// A non-positive limit uses DefaultRecentLimit. A failed fetch is logged and
// yields an empty slice plus the error.
func LoadPast(ctx context.Context, src spacex.Source, limit int, log logrus.FieldLogger) ([]Launch, error) {
	raw, err := src.PastLaunches(ctx)
	if err != nil {
		reportFetch(log, "past launches", err)
		return []Launch{}, err
	}
	launches := FromAPIList(raw)
	SortDescending(launches)
	return Newest(launches, limit), nil
}

// SortAscending orders launches by their raw timestamp string, stable for equal
// keys. Launches without a timestamp use "" and therefore sort first; ISO-8601
// strings in the same zone compare correctly as text.
func SortAscending(launches []Launch) {
	slices.SortStableFunc(launches, func(a, b Launch) int {
		return strings.Compare(a.DateUTC, b.DateUTC)
	})
}

// SortDescending is SortAscending reversed, still stable for equal keys.
func SortDescending(launches []Launch) {
	slices.SortStableFunc(launches, func(a, b Launch) int {
		return strings.Compare(b.DateUTC, a.DateUTC)
	})
}

// Newest truncates an already descending-sorted slice to limit entries.
func Newest(launches []Launch, limit int) []Launch {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if len(launches) <= limit {
		return launches
	}
	return launches[:limit]
}
