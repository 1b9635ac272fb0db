package launch

import (
	"strings"
	"time"
)

// DisplayTimeLayout is how launch timestamps are rendered.
const DisplayTimeLayout = "2006-01-02 15:04 UTC"

// isoLayouts covers the ISO-8601 shapes the API has been seen to emit, from
// full RFC 3339 down to date-only values.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 timestamp. A trailing "Z" is equivalent to
// "+00:00". The boolean is false when no layout matched.
func ParseTime(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTime renders raw with DisplayTimeLayout. Absent values become NoTime and
// unparseable values are returned unchanged.
//
// The wall clock of the parsed value is kept as is; the API reports UTC.
func FormatTime(raw string) string {
	if raw == "" {
		return NoTime
	}
	t, ok := ParseTime(raw)
	if !ok {
		return raw
	}
	return t.Format(DisplayTimeLayout)
}
