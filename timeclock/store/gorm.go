package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"westsiderising.org/timeclock/core"
	timeclock "westsiderising.org/timeclock/timeclock/core"
	"westsiderising.org/timeclock/timeclock/model"
)

// Gorm is the MySQL-backed clock event store.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// Migrate creates the store tables.
func (s *Gorm) Migrate() error {
	return s.db.AutoMigrate(&model.TimeEntry{}, &model.CurrentStatus{}, &core.Employee{})
}

func (s *Gorm) CreateEntry(ctx context.Context, entry *model.TimeEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Gorm) Entry(ctx context.Context, id string) (*model.TimeEntry, error) {
	var entry model.TimeEntry
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, timeclock.ErrEntryNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &entry, nil
}

func (s *Gorm) UpdateEntry(ctx context.Context, entry *model.TimeEntry) error {
	result := s.db.WithContext(ctx).Model(&model.TimeEntry{}).Where("id = ?", entry.ID).
		Select("ClockIn", "ClockOut", "TotalHours", "Status", "PayPeriodID", "EditHistory", "EmployeeName").
		Updates(entry)
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return timeclock.ErrEntryNotFound
	}
	return nil
}

func (s *Gorm) DeleteEntry(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TimeEntry{})
	if result.Error != nil {
		return storeErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return timeclock.ErrEntryNotFound
	}
	return nil
}

func (s *Gorm) EntriesByPeriod(ctx context.Context, periodID string) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := s.db.WithContext(ctx).
		Where("pay_period_id = ?", periodID).
		Order("clock_in DESC").
		Find(&entries).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *Gorm) EntriesByEmployee(ctx context.Context, employeeID string, limit int) ([]model.TimeEntry, error) {
	query := s.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("clock_in DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []model.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *Gorm) EntriesBetween(ctx context.Context, start, end time.Time, employeeIDs []string) ([]model.TimeEntry, error) {
	query := s.db.WithContext(ctx).
		Where("clock_in >= ? AND clock_in < ?", start, end).
		Order("clock_in DESC")
	if len(employeeIDs) > 0 {
		query = query.Where("employee_id IN ?", employeeIDs)
	}

	var entries []model.TimeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}

func (s *Gorm) Status(ctx context.Context, employeeID string) (*model.CurrentStatus, error) {
	var status model.CurrentStatus
	err := s.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.CurrentStatus{EmployeeID: employeeID}, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &status, nil
}

// ClaimClockIn runs the check-then-act sequence as one transaction, locking
// the status row so only one of two racing clock-ins can succeed.
func (s *Gorm) ClaimClockIn(ctx context.Context, status *model.CurrentStatus, entry *model.TimeEntry) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.CurrentStatus
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("employee_id = ?", status.EmployeeID).
			First(&current).Error
		if err == nil && current.IsClockedIn {
			return timeclock.ErrAlreadyClockedIn
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return storeErr(err)
		}

		if err := tx.Create(entry).Error; err != nil {
			return storeErr(err)
		}
		// An employee's first clock-in has no status row yet, so the locked
		// read above matches nothing and racing claims both reach the insert.
		// The loser hits a duplicate key on employee_id, or a deadlock from
		// the gap locks of the empty read.
		if err := tx.Save(status).Error; err != nil {
			if claimConflict(err) {
				return timeclock.ErrAlreadyClockedIn
			}
			return storeErr(err)
		}
		return nil
	})
	return err
}

// claimConflict reports whether err is a duplicate key or deadlock raised by
// two clock-ins racing to insert the same status row.
func claimConflict(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062 || mysqlErr.Number == 1213
	}
	return false
}

func (s *Gorm) ClearStatus(ctx context.Context, employeeID string) error {
	cleared := &model.CurrentStatus{EmployeeID: employeeID}
	if err := s.db.WithContext(ctx).Save(cleared).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *Gorm) ClockedIn(ctx context.Context) ([]model.CurrentStatus, error) {
	var statuses []model.CurrentStatus
	err := s.db.WithContext(ctx).Where("is_clocked_in = ?", true).Find(&statuses).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return statuses, nil
}

func (s *Gorm) EmployeeNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var employees []core.Employee
	err := s.db.WithContext(ctx).Where("employee_id IN ?", ids).Find(&employees).Error
	if err != nil {
		return nil, storeErr(err)
	}

	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		if emp.DisplayName != "" {
			names[emp.EmployeeID] = emp.DisplayName
		}
	}
	return names, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", timeclock.ErrStoreUnavailable, err)
}
