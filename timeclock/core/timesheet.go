package core

import (
	"context"
	"sort"
	"strings"
	"time"

	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

type EmployeeTimesheet struct {
	EmployeeID   string            `json:"employeeId"`
	EmployeeName string            `json:"employeeName"`
	Entries      []model.TimeEntry `json:"entries"`
	TotalHours   float64           `json:"totalHours"`
}

type PeriodTimesheet struct {
	Period    PayPeriod           `json:"period"`
	Employees []EmployeeTimesheet `json:"employees"`
}

// LoadPeriod reads every entry assigned to the period and groups it by
// employee. Entries within a group are newest clock-in first; groups are
// ordered by display name, case-insensitive. Display names are re-resolved
// from the employee profile where available, falling back to the denormalized
// snapshot taken at entry creation.
func (e *Engine) LoadPeriod(ctx context.Context, periodID string) (*PeriodTimesheet, error) {
	period, err := PayPeriodByID(periodID)
	if err != nil {
		return nil, err
	}

	entries, err := e.store.EntriesByPeriod(ctx, period.ID)
	if err != nil {
		return nil, err
	}

	groups := utils.GroupBy(entries, func(entry model.TimeEntry) string { return entry.EmployeeID })

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	names, err := e.store.EmployeeNames(ctx, ids)
	if err != nil {
		// Stale snapshot names are better than no timesheet at all.
		names = map[string]string{}
	}

	now := e.now()
	employees := make([]EmployeeTimesheet, 0, len(groups))
	for id, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].ClockIn.After(group[j].ClockIn)
		})

		name := names[id]
		if name == "" {
			name = group[0].EmployeeName
		}

		employees = append(employees, EmployeeTimesheet{
			EmployeeID:   id,
			EmployeeName: name,
			Entries:      group,
			TotalHours:   sumHours(group, now),
		})
	}

	sort.Slice(employees, func(i, j int) bool {
		return strings.ToLower(employees[i].EmployeeName) < strings.ToLower(employees[j].EmployeeName)
	})

	return &PeriodTimesheet{Period: period, Employees: employees}, nil
}

// Filter narrows the aggregate view to a single employee without re-querying
// the store. An unknown id yields an empty employee list.
func (ts *PeriodTimesheet) Filter(employeeID string) *PeriodTimesheet {
	if employeeID == "" || employeeID == "all" {
		return ts
	}
	return &PeriodTimesheet{
		Period: ts.Period,
		Employees: utils.Filter(ts.Employees, func(emp EmployeeTimesheet) bool {
			return emp.EmployeeID == employeeID
		}),
	}
}

// HoursSummary is the employee self-service stats block: hours today, this
// week (Sunday start) and this pay period, Chicago time. Open entries
// contribute a live elapsed-to-now estimate.
type HoursSummary struct {
	Today  float64 `json:"today"`
	Week   float64 `json:"week"`
	Period float64 `json:"period"`
}

func (e *Engine) HoursSummary(ctx context.Context, employeeID string) (HoursSummary, error) {
	entries, err := e.store.EntriesByEmployee(ctx, employeeID, 0)
	if err != nil {
		return HoursSummary{}, err
	}

	now := e.now()
	today := chicagoMidnight(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	periodID := PayPeriodFor(now).ID

	var summary HoursSummary
	for _, entry := range entries {
		hours := entryHours(entry, now)
		day := chicagoMidnight(entry.ClockIn)

		if day.Equal(today) {
			summary.Today += hours
		}
		if !day.Before(weekStart) {
			summary.Week += hours
		}
		if entry.PayPeriodID == periodID {
			summary.Period += hours
		}
	}
	return summary, nil
}

// SearchParams selects entries by clock-in over a half-open range [Start, End),
// optionally narrowed to specific employees.
type SearchParams struct {
	Start       time.Time
	End         time.Time
	EmployeeIDs []string
}

func (e *Engine) SearchEntries(ctx context.Context, params SearchParams) ([]model.TimeEntry, error) {
	if !params.End.After(params.Start) {
		return nil, ErrInvalidTimeRange
	}
	return e.store.EntriesBetween(ctx, params.Start, params.End, params.EmployeeIDs)
}

func sumHours(entries []model.TimeEntry, now time.Time) float64 {
	var total float64
	for _, entry := range entries {
		total += entryHours(entry, now)
	}
	return total
}

// entryHours is the entry's contribution to an aggregate: recorded hours for
// completed entries, a monotonically growing estimate for open ones.
func entryHours(entry model.TimeEntry, now time.Time) float64 {
	if entry.Status == model.EntryStatusCompleted {
		return entry.TotalHours
	}
	if now.After(entry.ClockIn) {
		return RoundHours(now.Sub(entry.ClockIn))
	}
	return 0
}
