package common

import (
	"encoding/json"
	"time"

	"westsiderising.org/timeclock/utils"
)

// LocalDateTime binds a datetime-local form value ("2026-01-15T14:30",
// optionally with seconds) interpreted as Chicago wall time.
type LocalDateTime struct {
	time.Time
}

const dateTimeLayout = "2006-01-02T15:04:05"
const dateTimeLayoutShort = "2006-01-02T15:04"

func (l *LocalDateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		l.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, s, utils.Chicago)
	if err != nil {
		t, err = time.ParseInLocation(dateTimeLayoutShort, s, utils.Chicago)
	}
	if err != nil {
		return err
	}
	l.Time = t
	return nil
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(l.In(utils.Chicago).Format(dateTimeLayout))
}
