package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Role claims carried by identity tokens. Role gating happens at the web
// boundary; the attendance engine trusts the identity it is given.
const (
	RoleEmployee   = "employee"
	RoleManager    = "manager"
	RoleSuperadmin = "superadmin"
)

// Employee is the profile record. DisplayName is the source of truth the
// timesheet view re-resolves against; entries also carry a denormalized
// snapshot taken at creation as a fallback.
type Employee struct {
	EmployeeID  string  `gorm:"primaryKey;column:employee_id;type:varchar(36)" json:"employeeId"`
	Email       string  `gorm:"column:email;type:varchar(254);uniqueIndex" json:"email"`
	DisplayName string  `gorm:"column:display_name;type:varchar(120)" json:"displayName"`
	Role        string  `gorm:"column:role;type:varchar(20);not null;default:employee" json:"role"`
	Phone       *string `gorm:"column:phone;type:varchar(20)" json:"phone"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (Employee) TableName() string {
	return "employees"
}

func FindEmployeeByID(db *gorm.DB, id string) (*Employee, error) {
	var emp Employee
	result := db.Where("employee_id = ?", id).First(&emp)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}

func ListEmployees(db *gorm.DB) ([]Employee, error) {
	var employees []Employee
	err := db.Order("display_name").Find(&employees).Error
	return employees, err
}
