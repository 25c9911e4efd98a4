package utils

import (
	"fmt"
	"time"
)

// Chicago is the organizational timezone. All bucketing and display is done in
// this zone; stored instants stay UTC.
var Chicago = loadChicago()

func loadChicago() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.FixedZone("CST", -6*60*60) // Fallback to CST if tzdata is unavailable
	}
	return loc
}

func ChicagoNow() time.Time {
	return time.Now().In(Chicago)
}

// FormatDisplayDate renders a date the way the dashboard shows it, e.g. "January 6, 2026".
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Chicago).Format("January 2, 2006")
}

// FormatClockTime renders a 12-hour wall clock time with AM/PM suffix, e.g. "5:30 PM".
func FormatClockTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Chicago).Format("3:04 PM")
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	// Fallback layouts are interpreted as Chicago wall time
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, Chicago); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
