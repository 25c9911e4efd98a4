package core_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/timeclock/store"
	"westsiderising.org/timeclock/utils"
)

func seedEntry(t *testing.T, memory *store.Memory, id, employeeID, name string, clockIn time.Time, hours float64) {
	t.Helper()
	entry := &model.TimeEntry{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: name,
		ClockIn:      clockIn,
		ClockOut:     utils.Ptr(clockIn.Add(time.Duration(hours * float64(time.Hour)))),
		TotalHours:   hours,
		Status:       model.EntryStatusCompleted,
		PayPeriodID:  timeclock.PayPeriodFor(clockIn).ID,
	}
	require.NoError(t, memory.CreateEntry(context.Background(), entry))
}

func TestLoadPeriod(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	seedEntry(t, memory, "e1", "emp-a", "amy", time.Date(2026, time.January, 7, 9, 0, 0, 0, utils.Chicago), 4)
	seedEntry(t, memory, "e2", "emp-a", "amy", time.Date(2026, time.January, 9, 9, 0, 0, 0, utils.Chicago), 3.5)
	seedEntry(t, memory, "e3", "emp-z", "Zoe Chen", time.Date(2026, time.January, 8, 9, 0, 0, 0, utils.Chicago), 8)
	// re-resolution picks up the renamed profile
	memory.SetEmployeeName("emp-a", "Amy Walker")

	timesheet, err := engine.LoadPeriod(ctx, "2026-01-06")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-06", timesheet.Period.ID)
	require.Len(t, timesheet.Employees, 2)

	amy := timesheet.Employees[0]
	assert.Equal(t, "Amy Walker", amy.EmployeeName)
	assert.Equal(t, 7.5, amy.TotalHours)
	require.Len(t, amy.Entries, 2)
	assert.Equal(t, "e2", amy.Entries[0].ID) // newest clock-in first
	assert.Equal(t, "e1", amy.Entries[1].ID)

	zoe := timesheet.Employees[1]
	assert.Equal(t, "Zoe Chen", zoe.EmployeeName) // snapshot fallback
	assert.Equal(t, 8.0, zoe.TotalHours)
}

func TestLoadPeriodLiveEstimate(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	clockIn := time.Now().Add(-2 * time.Hour)
	entry := &model.TimeEntry{
		ID:          "open-1",
		EmployeeID:  "emp-a",
		ClockIn:     clockIn,
		Status:      model.EntryStatusActive,
		PayPeriodID: timeclock.PayPeriodFor(clockIn).ID,
	}
	require.NoError(t, memory.CreateEntry(ctx, entry))

	timesheet, err := engine.LoadPeriod(ctx, entry.PayPeriodID)
	require.NoError(t, err)
	require.Len(t, timesheet.Employees, 1)
	assert.InDelta(t, 2.0, timesheet.Employees[0].TotalHours, 0.01)
}

func TestFilter(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	seedEntry(t, memory, "e1", "emp-a", "Amy Walker", time.Date(2026, time.January, 7, 9, 0, 0, 0, utils.Chicago), 4)
	seedEntry(t, memory, "e2", "emp-z", "Zoe Chen", time.Date(2026, time.January, 8, 9, 0, 0, 0, utils.Chicago), 8)

	timesheet, err := engine.LoadPeriod(ctx, "2026-01-06")
	require.NoError(t, err)

	filtered := timesheet.Filter("emp-z")
	require.Len(t, filtered.Employees, 1)
	assert.Equal(t, "emp-z", filtered.Employees[0].EmployeeID)

	assert.Same(t, timesheet, timesheet.Filter(""))
	assert.Same(t, timesheet, timesheet.Filter("all"))
	assert.Empty(t, timesheet.Filter("unknown").Employees)
}

func TestHoursSummary(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	now := utils.ChicagoNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, utils.Chicago)

	seedEntry(t, memory, "e1", "emp-a", "Amy Walker", today.Add(time.Minute), 2.5)
	seedEntry(t, memory, "e2", "emp-a", "Amy Walker", today.AddDate(0, 0, -30), 4)

	summary, err := engine.HoursSummary(ctx, "emp-a")
	require.NoError(t, err)
	assert.Equal(t, 2.5, summary.Today)
	assert.Equal(t, 2.5, summary.Week)
	assert.Equal(t, 2.5, summary.Period)
}

func TestSearchEntries(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	seedEntry(t, memory, "e1", "emp-a", "Amy Walker", time.Date(2026, time.January, 10, 9, 0, 0, 0, utils.Chicago), 4)
	seedEntry(t, memory, "e2", "emp-z", "Zoe Chen", time.Date(2026, time.January, 15, 9, 0, 0, 0, utils.Chicago), 8)
	seedEntry(t, memory, "e3", "emp-a", "Amy Walker", time.Date(2026, time.February, 5, 9, 0, 0, 0, utils.Chicago), 6)

	entries, err := engine.SearchEntries(ctx, timeclock.SearchParams{
		Start: time.Date(2026, time.January, 9, 0, 0, 0, 0, utils.Chicago),
		End:   time.Date(2026, time.January, 16, 0, 0, 0, 0, utils.Chicago),
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e2", entries[0].ID)
	assert.Equal(t, "e1", entries[1].ID)

	entries, err = engine.SearchEntries(ctx, timeclock.SearchParams{
		Start:       time.Date(2026, time.January, 1, 0, 0, 0, 0, utils.Chicago),
		End:         time.Date(2026, time.March, 1, 0, 0, 0, 0, utils.Chicago),
		EmployeeIDs: []string{"emp-a"},
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e3", entries[0].ID)

	_, err = engine.SearchEntries(ctx, timeclock.SearchParams{
		Start: time.Date(2026, time.January, 16, 0, 0, 0, 0, utils.Chicago),
		End:   time.Date(2026, time.January, 9, 0, 0, 0, 0, utils.Chicago),
	})
	assert.ErrorIs(t, err, timeclock.ErrInvalidTimeRange)
}

func TestClockedIn(t *testing.T) {
	engine, memory := newEngine()
	ctx := context.Background()

	_, err := engine.ClockIn(ctx, "emp-z", "Zoe Chen")
	require.NoError(t, err)
	_, err = engine.ClockIn(ctx, "emp-a", "Amy Walker")
	require.NoError(t, err)
	memory.SetEmployeeName("emp-a", "Amy Walker")
	memory.SetEmployeeName("emp-z", "Zoe Chen")

	rows, err := engine.ClockedIn(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Amy Walker", rows[0].EmployeeName)
	assert.Equal(t, "Zoe Chen", rows[1].EmployeeName)
	assert.Equal(t, "0h 0m", rows[0].Duration)

	_, err = engine.ClockOut(ctx, "emp-a")
	require.NoError(t, err)

	rows, err = engine.ClockedIn(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "emp-z", rows[0].EmployeeID)
}

func TestWatchClockedIn(t *testing.T) {
	engine, memory := newEngine()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := engine.ClockIn(ctx, "emp-a", "Amy Walker")
	require.NoError(t, err)
	memory.SetEmployeeName("emp-a", "Amy Walker")

	feed := engine.WatchClockedIn(ctx, 5*time.Millisecond)

	select {
	case rows, ok := <-feed:
		require.True(t, ok)
		require.Len(t, rows, 1)
		assert.Equal(t, "emp-a", rows[0].EmployeeID)
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}

	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-feed:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("feed did not close after cancel")
		}
	}
}
