package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

func TestMemoryClaimClockInRace(t *testing.T) {
	memory := NewMemory()
	ctx := context.Background()

	const racers = 50
	errs := make(chan error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			now := time.Now()
			entryID := fmt.Sprintf("entry-%d", i)
			errs <- memory.ClaimClockIn(ctx,
				&model.CurrentStatus{EmployeeID: "emp-1", IsClockedIn: true, CurrentEntryID: &entryID, ClockInTime: &now},
				&model.TimeEntry{ID: entryID, EmployeeID: "emp-1", ClockIn: now, Status: model.EntryStatusActive})
		}(i)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestMemoryStatusDefaults(t *testing.T) {
	memory := NewMemory()

	status, err := memory.Status(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", status.EmployeeID)
	assert.False(t, status.IsClockedIn)
	assert.Nil(t, status.CurrentEntryID)
}

func TestMemoryEntryNotFound(t *testing.T) {
	memory := NewMemory()
	ctx := context.Background()

	_, err := memory.Entry(ctx, "missing")
	assert.ErrorIs(t, err, timeclock.ErrEntryNotFound)

	err = memory.UpdateEntry(ctx, &model.TimeEntry{ID: "missing"})
	assert.ErrorIs(t, err, timeclock.ErrEntryNotFound)

	err = memory.DeleteEntry(ctx, "missing")
	assert.ErrorIs(t, err, timeclock.ErrEntryNotFound)
}

func TestMemoryEntriesBetween(t *testing.T) {
	memory := NewMemory()
	ctx := context.Background()

	at := func(day int) time.Time {
		return time.Date(2026, time.January, day, 9, 0, 0, 0, utils.Chicago)
	}
	for _, entry := range []*model.TimeEntry{
		{ID: "e1", EmployeeID: "emp-a", ClockIn: at(10)},
		{ID: "e2", EmployeeID: "emp-b", ClockIn: at(12)},
		{ID: "e3", EmployeeID: "emp-a", ClockIn: at(20)},
	} {
		require.NoError(t, memory.CreateEntry(ctx, entry))
	}

	entries, err := memory.EntriesBetween(ctx, at(9), at(13), nil)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].ID)
	assert.Equal(t, "e1", entries[1].ID)

	// start is inclusive, end is exclusive
	entries, err = memory.EntriesBetween(ctx, at(10), at(12), nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "e1", entries[0].ID)

	entries, err = memory.EntriesBetween(ctx, at(1), at(31), []string{"emp-a"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e3", entries[0].ID)
}

func TestMemoryEntriesByEmployeeLimit(t *testing.T) {
	memory := NewMemory()
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		require.NoError(t, memory.CreateEntry(ctx, &model.TimeEntry{
			ID:         "e" + string(rune('0'+day)),
			EmployeeID: "emp-a",
			ClockIn:    time.Date(2026, time.January, day, 9, 0, 0, 0, utils.Chicago),
		}))
	}

	entries, err := memory.EntriesByEmployee(ctx, "emp-a", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e5", entries[0].ID)
	assert.Equal(t, "e3", entries[2].ID)
}
