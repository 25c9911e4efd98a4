package core

import (
	"strings"
	"time"

	"westsiderising.org/timeclock/timeclock/model"
)

// Editor identifies the authenticated administrator performing a change.
type Editor struct {
	ID   string
	Name string
}

// RecordEdit appends one audit record to the entry's history. Appending is the
// only mutation ever performed on the history; prior records are immutable.
func RecordEdit(entry *model.TimeEntry, editor Editor, reason string, changes model.EntryChanges) error {
	if strings.TrimSpace(reason) == "" {
		return ErrMissingReason
	}

	entry.EditHistory = append(entry.EditHistory, model.EditRecord{
		EditedBy:     editor.ID,
		EditedByName: editor.Name,
		EditedAt:     time.Now(),
		Reason:       reason,
		Changes:      changes,
	})
	return nil
}

// timeDiff builds a before/after pair in RFC 3339 form. Nil means the value
// was or becomes absent (an open entry's clock out).
func timeDiff(before, after *time.Time) *model.ChangeValue {
	return &model.ChangeValue{
		Before: formatChange(before),
		After:  formatChange(after),
	}
}

func formatChange(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
