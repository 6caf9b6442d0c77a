package habit

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 form completion and creation dates are
// written in: local wall-clock time, microsecond precision, no zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Layouts accepted on read. Fractional seconds are accepted after the
// seconds field even when the layout omits them.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FormatTimestamp renders t in TimestampLayout using its wall-clock fields.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseTimestamp parses an ISO-8601 date or date-time. Values without a zone
// are read as local time; values carrying an offset keep it.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 timestamp %q: %w", s, err)
	}
	return t, nil
}
