package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

// ClockedInEmployee is one row of the dashboard's "currently clocked in" panel.
type ClockedInEmployee struct {
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	ClockInTime  time.Time `json:"clockInTime"`
	Duration     string    `json:"duration"` // e.g. "3h 27m", elapsed at the snapshot instant
}

// ClockedIn returns a snapshot of everyone currently on the clock, ordered by
// display name.
func (e *Engine) ClockedIn(ctx context.Context) ([]ClockedInEmployee, error) {
	statuses, err := e.store.ClockedIn(ctx)
	if err != nil {
		return nil, err
	}

	ids := utils.Map(statuses, func(s model.CurrentStatus) string { return s.EmployeeID })
	names, err := e.store.EmployeeNames(ctx, ids)
	if err != nil {
		names = map[string]string{}
	}

	now := e.now()
	rows := make([]ClockedInEmployee, 0, len(statuses))
	for _, status := range statuses {
		if status.ClockInTime == nil {
			continue
		}
		name := names[status.EmployeeID]
		if name == "" {
			name = "Unknown"
		}
		rows = append(rows, ClockedInEmployee{
			EmployeeID:   status.EmployeeID,
			EmployeeName: name,
			ClockInTime:  *status.ClockInTime,
			Duration:     formatDuration(now.Sub(*status.ClockInTime)),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return strings.ToLower(rows[i].EmployeeName) < strings.ToLower(rows[j].EmployeeName)
	})
	return rows, nil
}

// WatchClockedIn re-reads the clocked-in snapshot on a fixed interval and
// delivers it on the returned channel until ctx is canceled. Canceling the
// context releases the feed and closes the channel; the feed is best-effort
// and a slow receiver simply skips snapshots.
func (e *Engine) WatchClockedIn(ctx context.Context, interval time.Duration) <-chan []ClockedInEmployee {
	out := make(chan []ClockedInEmployee, 1)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			rows, err := e.ClockedIn(ctx)
			if err == nil {
				select {
				case out <- rows:
				default:
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
