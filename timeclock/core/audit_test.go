package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

func TestRecordEdit(t *testing.T) {
	entry := &model.TimeEntry{ID: "entry-1"}
	editor := Editor{ID: "admin-1", Name: "Dana Reyes"}

	err := RecordEdit(entry, editor, "corrected a typo", model.EntryChanges{})
	require.NoError(t, err)
	require.Len(t, entry.EditHistory, 1)

	record := entry.EditHistory[0]
	assert.Equal(t, "admin-1", record.EditedBy)
	assert.Equal(t, "Dana Reyes", record.EditedByName)
	assert.Equal(t, "corrected a typo", record.Reason)
	assert.WithinDuration(t, time.Now(), record.EditedAt, time.Minute)
}

func TestRecordEditRequiresReason(t *testing.T) {
	entry := &model.TimeEntry{ID: "entry-1"}

	for _, reason := range []string{"", "   ", "\t\n"} {
		err := RecordEdit(entry, Editor{ID: "admin-1"}, reason, model.EntryChanges{})
		assert.ErrorIs(t, err, ErrMissingReason)
	}
	assert.Empty(t, entry.EditHistory)
}

func TestRecordEditAppends(t *testing.T) {
	entry := &model.TimeEntry{ID: "entry-1"}
	editor := Editor{ID: "admin-1", Name: "Dana Reyes"}

	require.NoError(t, RecordEdit(entry, editor, "first", model.EntryChanges{}))
	require.NoError(t, RecordEdit(entry, editor, "second", model.EntryChanges{}))

	require.Len(t, entry.EditHistory, 2)
	assert.Equal(t, "first", entry.EditHistory[0].Reason)
	assert.Equal(t, "second", entry.EditHistory[1].Reason)
}

func TestTimeDiff(t *testing.T) {
	before := time.Date(2026, time.January, 12, 17, 30, 0, 0, utils.Chicago)
	after := time.Date(2026, time.January, 12, 17, 0, 0, 0, utils.Chicago)

	diff := timeDiff(&before, &after)
	require.NotNil(t, diff.Before)
	require.NotNil(t, diff.After)
	assert.Equal(t, "2026-01-12T23:30:00Z", *diff.Before)
	assert.Equal(t, "2026-01-12T23:00:00Z", *diff.After)

	cleared := timeDiff(&before, nil)
	assert.NotNil(t, cleared.Before)
	assert.Nil(t, cleared.After)
}
