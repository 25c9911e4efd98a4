package model

import (
	"time"

	"gorm.io/datatypes"
)

type EntryStatus string

const (
	EntryStatusActive    EntryStatus = "active"
	EntryStatusCompleted EntryStatus = "completed"
)

// ChangeTypeManualCreation marks the sole history record of a back-filled entry.
const ChangeTypeManualCreation = "manual_creation"

type ChangeValue struct {
	Before *string `json:"before"`
	After  *string `json:"after"`
}

type EntryChanges struct {
	Type     string       `json:"type,omitempty"`
	ClockIn  *ChangeValue `json:"clockIn,omitempty"`
	ClockOut *ChangeValue `json:"clockOut,omitempty"`
}

type EditRecord struct {
	EditedBy     string       `json:"editedBy"`
	EditedByName string       `json:"editedByName"`
	EditedAt     time.Time    `json:"editedAt"`
	Reason       string       `json:"reason"`
	Changes      EntryChanges `json:"changes"`
}

// TimeEntry is one clock-in/clock-out session. Entries are only mutated by
// clock-out or by an administrator edit; edits always append to EditHistory.
type TimeEntry struct {
	ID           string                          `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	EmployeeID   string                          `gorm:"column:employee_id;type:varchar(36);not null;index" json:"employeeId"`
	EmployeeName string                          `gorm:"column:employee_name;type:varchar(120)" json:"employeeName"`
	ClockIn      time.Time                       `gorm:"column:clock_in;type:timestamp;not null" json:"clockIn"`
	ClockOut     *time.Time                      `gorm:"column:clock_out;type:timestamp" json:"clockOut"`
	TotalHours   float64                         `gorm:"column:total_hours;type:decimal(10,2)" json:"totalHours"`
	Status       EntryStatus                     `gorm:"column:status;type:varchar(20);not null" json:"status"`
	PayPeriodID  string                          `gorm:"column:pay_period_id;type:varchar(10);not null;index" json:"payPeriodId"`
	EditHistory  datatypes.JSONSlice[EditRecord] `gorm:"column:edit_history" json:"editHistory"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

func (e *TimeEntry) Open() bool {
	return e.Status == EntryStatusActive
}
