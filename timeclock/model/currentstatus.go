package model

import "time"

// CurrentStatus is the per-employee "am I on the clock" cache. TimeEntry.Status
// is authoritative; every live clock-in/out rewrites this row to match.
type CurrentStatus struct {
	EmployeeID     string     `gorm:"primaryKey;column:employee_id;type:varchar(36)" json:"employeeId"`
	IsClockedIn    bool       `gorm:"column:is_clocked_in;not null" json:"isClockedIn"`
	CurrentEntryID *string    `gorm:"column:current_entry_id;type:varchar(36)" json:"currentEntryId"`
	ClockInTime    *time.Time `gorm:"column:clock_in_time;type:timestamp" json:"clockInTime"`

	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (CurrentStatus) TableName() string {
	return "current_statuses"
}
