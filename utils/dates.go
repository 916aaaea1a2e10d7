// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05", // offset-less form the dashboard sends
	"2006-01-02 15:04:05",
}

// ParseDateTime parses the date-time formats accepted on the wire.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date-time format: %q", value)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// RelativeDay renders t relative to now: "Today", "Yesterday", "N days ago"
// or the plain date for anything further out.
func RelativeDay(t, now time.Time) string {
	days := DaysBetween(t, now)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return t.Format("02.01.2006")
	}
}
