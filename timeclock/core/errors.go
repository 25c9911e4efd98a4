package core

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("employee is already clocked in")
	ErrNotClockedIn     = errors.New("employee is not clocked in")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrClockInRequired  = errors.New("clock in time is required")
	ErrInvalidTimeRange = errors.New("clock out time must be after clock in time")
	ErrMissingReason    = errors.New("a reason is required for this change")

	// ErrStoreUnavailable wraps I/O failures from the clock event store.
	ErrStoreUnavailable = errors.New("clock event store unavailable")
)
