package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive      = "active"
	StatusDeactivated = "deactivated"
)

// Employee mirrors the roster owned by the external HR store. This service
// only reads it; creation and profile edits happen elsewhere.
type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code        string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_code"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Role        string    `gorm:"type:varchar(30);not null;default:'employee'"`
	Department  string    `gorm:"type:varchar(100);not null;index:idx_employees_department"`
	Designation string    `gorm:"type:varchar(100)"`
	ManagerCode *string   `gorm:"type:varchar(30)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active';index:idx_employees_status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
