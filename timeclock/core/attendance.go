package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"westsiderising.org/timeclock/timeclock/model"
)

// Store is the clock event store collaborator. Implementations persist
// TimeEntry and CurrentStatus documents; the engine never touches storage
// directly. List operations return entries ordered by clock-in descending.
type Store interface {
	CreateEntry(ctx context.Context, entry *model.TimeEntry) error
	Entry(ctx context.Context, id string) (*model.TimeEntry, error)
	UpdateEntry(ctx context.Context, entry *model.TimeEntry) error
	DeleteEntry(ctx context.Context, id string) error
	EntriesByPeriod(ctx context.Context, periodID string) ([]model.TimeEntry, error)
	EntriesByEmployee(ctx context.Context, employeeID string, limit int) ([]model.TimeEntry, error)
	EntriesBetween(ctx context.Context, start, end time.Time, employeeIDs []string) ([]model.TimeEntry, error)

	// Status returns the employee's cached clock state; a zero-value status
	// (not clocked in) when none has been written yet.
	Status(ctx context.Context, employeeID string) (*model.CurrentStatus, error)

	// ClaimClockIn atomically checks that the employee is not clocked in,
	// creates the entry and writes the new status. Returns ErrAlreadyClockedIn
	// when the claim loses, so two racing clock-ins cannot both open an entry.
	ClaimClockIn(ctx context.Context, status *model.CurrentStatus, entry *model.TimeEntry) error

	ClearStatus(ctx context.Context, employeeID string) error
	ClockedIn(ctx context.Context) ([]model.CurrentStatus, error)

	// EmployeeNames resolves employee ids to current profile display names.
	// Missing ids are simply absent from the map.
	EmployeeNames(ctx context.Context, ids []string) (map[string]string, error)
}

// ClockInEvent is handed to the Notifier after a successful clock-in.
type ClockInEvent struct {
	EntryID      string    `json:"entryId"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	ClockIn      time.Time `json:"clockIn"`
}

// Notifier delivers clock-in alerts out of band (SMS, email, chat). Delivery
// failure must never block or roll back the clock-in itself.
type Notifier interface {
	ClockInOccurred(ctx context.Context, event ClockInEvent) error
}

// Engine enforces the per-employee clock-in/out state machine.
type Engine struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

func NewEngine(store Store, notifier Notifier) *Engine {
	return &Engine{
		store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// ClockIn opens a new active entry for the employee. Fails with
// ErrAlreadyClockedIn if an entry is already open.
func (e *Engine) ClockIn(ctx context.Context, employeeID, employeeName string) (*model.TimeEntry, error) {
	now := e.now()

	entry := &model.TimeEntry{
		ID:           uuid.NewString(),
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		ClockIn:      now,
		Status:       model.EntryStatusActive,
		PayPeriodID:  PayPeriodFor(now).ID,
	}
	status := &model.CurrentStatus{
		EmployeeID:     employeeID,
		IsClockedIn:    true,
		CurrentEntryID: &entry.ID,
		ClockInTime:    &now,
	}

	if err := e.store.ClaimClockIn(ctx, status, entry); err != nil {
		return nil, err
	}

	if e.notifier != nil {
		event := ClockInEvent{
			EntryID:      entry.ID,
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			ClockIn:      now,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.notifier.ClockInOccurred(ctx, event); err != nil {
				fmt.Printf("clock-in notification failed for %s: %v\n", employeeID, err)
			}
		}()
	}

	return entry, nil
}

// ClockOut closes the employee's open entry, computes total hours and clears
// the status cache. Fails with ErrNotClockedIn when no entry is open.
func (e *Engine) ClockOut(ctx context.Context, employeeID string) (*model.TimeEntry, error) {
	status, err := e.store.Status(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !status.IsClockedIn || status.CurrentEntryID == nil {
		return nil, ErrNotClockedIn
	}

	entry, err := e.store.Entry(ctx, *status.CurrentEntryID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	entry.ClockOut = &now
	entry.TotalHours = RoundHours(now.Sub(entry.ClockIn))
	entry.Status = model.EntryStatusCompleted

	if err := e.store.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	if err := e.store.ClearStatus(ctx, employeeID); err != nil {
		return nil, err
	}

	return entry, nil
}

// Status reports whether the employee is currently clocked in.
func (e *Engine) Status(ctx context.Context, employeeID string) (*model.CurrentStatus, error) {
	return e.store.Status(ctx, employeeID)
}

// RecentEntries lists the employee's latest entries, newest clock-in first.
func (e *Engine) RecentEntries(ctx context.Context, employeeID string, limit int) ([]model.TimeEntry, error) {
	return e.store.EntriesByEmployee(ctx, employeeID, limit)
}
