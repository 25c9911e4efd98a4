package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"westsiderising.org/timeclock/timeclock/model"
	"westsiderising.org/timeclock/utils"
)

type EditParams struct {
	ClockIn  time.Time
	ClockOut *time.Time
	Reason   string
	Editor   Editor
}

// EditEntry retroactively corrects an entry's times. The prior values are
// captured in an audit record, total hours and the pay period assignment are
// recomputed from the new times, and the entry is persisted. Clearing the
// clock-out reopens the entry without touching CurrentStatus: admin overrides
// are out of band and never imply the employee is live on the clock.
func (e *Engine) EditEntry(ctx context.Context, entryID string, params EditParams) (*model.TimeEntry, error) {
	if strings.TrimSpace(params.Reason) == "" {
		return nil, ErrMissingReason
	}
	if params.ClockIn.IsZero() {
		return nil, ErrClockInRequired
	}
	if params.ClockOut != nil && !params.ClockOut.After(params.ClockIn) {
		return nil, ErrInvalidTimeRange
	}

	entry, err := e.store.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	changes := model.EntryChanges{
		ClockIn:  timeDiff(&entry.ClockIn, &params.ClockIn),
		ClockOut: timeDiff(entry.ClockOut, params.ClockOut),
	}
	if err := RecordEdit(entry, params.Editor, params.Reason, changes); err != nil {
		return nil, err
	}

	entry.ClockIn = params.ClockIn
	entry.ClockOut = params.ClockOut
	entry.PayPeriodID = PayPeriodFor(params.ClockIn).ID

	if params.ClockOut != nil {
		entry.Status = model.EntryStatusCompleted
		entry.TotalHours = RoundHours(params.ClockOut.Sub(params.ClockIn))
	} else {
		entry.Status = model.EntryStatusActive
		entry.TotalHours = 0
	}

	if err := e.store.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

type ManualEntryParams struct {
	EmployeeID   string
	EmployeeName string
	ClockIn      time.Time
	ClockOut     time.Time
	Reason       string
	Editor       Editor
}

// CreateManualEntry back-fills a completed session the employee never clocked
// through the live flow. The entry carries a single manual-creation audit
// record and does not touch CurrentStatus.
func (e *Engine) CreateManualEntry(ctx context.Context, params ManualEntryParams) (*model.TimeEntry, error) {
	if strings.TrimSpace(params.Reason) == "" {
		return nil, ErrMissingReason
	}
	if params.ClockIn.IsZero() {
		return nil, ErrClockInRequired
	}
	if !params.ClockOut.After(params.ClockIn) {
		return nil, ErrInvalidTimeRange
	}

	entry := &model.TimeEntry{
		ID:           uuid.NewString(),
		EmployeeID:   params.EmployeeID,
		EmployeeName: params.EmployeeName,
		ClockIn:      params.ClockIn,
		ClockOut:     utils.Ptr(params.ClockOut),
		TotalHours:   RoundHours(params.ClockOut.Sub(params.ClockIn)),
		Status:       model.EntryStatusCompleted,
		PayPeriodID:  PayPeriodFor(params.ClockIn).ID,
	}

	reason := fmt.Sprintf("Manual entry created: %s", params.Reason)
	changes := model.EntryChanges{Type: model.ChangeTypeManualCreation}
	if err := RecordEdit(entry, params.Editor, reason, changes); err != nil {
		return nil, err
	}

	if err := e.store.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// DeleteEntry permanently removes an entry. Irreversible; the caller is
// responsible for confirming first.
func (e *Engine) DeleteEntry(ctx context.Context, entryID string) error {
	if _, err := e.store.Entry(ctx, entryID); err != nil {
		return err
	}
	return e.store.DeleteEntry(ctx, entryID)
}

// AuditTrail returns the entry's edit history, oldest record first.
func (e *Engine) AuditTrail(ctx context.Context, entryID string) ([]model.EditRecord, error) {
	entry, err := e.store.Entry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry.EditHistory, nil
}
