package store

import (
	"context"
	"sort"
	"sync"
	"time"

	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/model"
)

// Memory is an in-process clock event store with the same semantics as the
// MySQL store, including the atomic clock-in claim. Used by tests and local
// tooling.
type Memory struct {
	mu       sync.Mutex
	entries  map[string]model.TimeEntry
	statuses map[string]model.CurrentStatus
	names    map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		entries:  make(map[string]model.TimeEntry),
		statuses: make(map[string]model.CurrentStatus),
		names:    make(map[string]string),
	}
}

// SetEmployeeName registers a profile display name for re-resolution.
func (s *Memory) SetEmployeeName(employeeID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[employeeID] = name
}

func (s *Memory) CreateEntry(_ context.Context, entry *model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.ID] = *entry
	return nil
}

func (s *Memory) Entry(_ context.Context, id string) (*model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, timeclock.ErrEntryNotFound
	}
	return &entry, nil
}

func (s *Memory) UpdateEntry(_ context.Context, entry *model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.ID]; !ok {
		return timeclock.ErrEntryNotFound
	}
	s.entries[entry.ID] = *entry
	return nil
}

func (s *Memory) DeleteEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; !ok {
		return timeclock.ErrEntryNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *Memory) EntriesByPeriod(_ context.Context, periodID string) ([]model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(e model.TimeEntry) bool { return e.PayPeriodID == periodID }, 0), nil
}

func (s *Memory) EntriesByEmployee(_ context.Context, employeeID string, limit int) ([]model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collect(func(e model.TimeEntry) bool { return e.EmployeeID == employeeID }, limit), nil
}

func (s *Memory) EntriesBetween(_ context.Context, start, end time.Time, employeeIDs []string) ([]model.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	return s.collect(func(e model.TimeEntry) bool {
		if len(wanted) > 0 && !wanted[e.EmployeeID] {
			return false
		}
		return !e.ClockIn.Before(start) && e.ClockIn.Before(end)
	}, 0), nil
}

func (s *Memory) Status(_ context.Context, employeeID string) (*model.CurrentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[employeeID]
	if !ok {
		return &model.CurrentStatus{EmployeeID: employeeID}, nil
	}
	return &status, nil
}

func (s *Memory) ClaimClockIn(_ context.Context, status *model.CurrentStatus, entry *model.TimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.statuses[status.EmployeeID]; ok && current.IsClockedIn {
		return timeclock.ErrAlreadyClockedIn
	}
	s.entries[entry.ID] = *entry
	s.statuses[status.EmployeeID] = *status
	return nil
}

func (s *Memory) ClearStatus(_ context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[employeeID] = model.CurrentStatus{EmployeeID: employeeID}
	return nil
}

func (s *Memory) ClockedIn(_ context.Context) ([]model.CurrentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var statuses []model.CurrentStatus
	for _, status := range s.statuses {
		if status.IsClockedIn {
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func (s *Memory) EmployeeNames(_ context.Context, ids []string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make(map[string]string)
	for _, id := range ids {
		if name, ok := s.names[id]; ok {
			names[id] = name
		}
	}
	return names, nil
}

func (s *Memory) collect(match func(model.TimeEntry) bool, limit int) []model.TimeEntry {
	var entries []model.TimeEntry
	for _, entry := range s.entries {
		if match(entry) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ClockIn.After(entries[j].ClockIn)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
