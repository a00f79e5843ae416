package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	TypeLeave      = "leave"
	TypeHalfday    = "halfday"
	TypePermission = "permission"
	TypeOnDuty     = "od"
)

const (
	ModeCasual = "casual"
	ModeUnpaid = "unpaid"
)

const (
	SessionMorning   = "morning"
	SessionAfternoon = "afternoon"
)

// Half-day sessions map to fixed time slots.
const (
	MorningStart   = "09:00"
	MorningEnd     = "13:00"
	AfternoonStart = "13:00"
	AfternoonEnd   = "18:00"
)

// Request is a leave, half-day, permission, or on-duty submission. Once a
// request reaches a terminal status only its approval history may grow.
type Request struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string    `gorm:"type:varchar(30);not null;index:idx_requests_employee_dates"`

	Type           string  `gorm:"type:varchar(20);not null"`
	LeaveMode      *string `gorm:"type:varchar(20)"`
	HalfDaySession *string `gorm:"type:varchar(20)"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_requests_employee_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_requests_employee_dates"`
	StartTime *string   `gorm:"type:varchar(5)"`
	EndTime   *string   `gorm:"type:varchar(5)"`

	Reason          string  `gorm:"type:text;not null"`
	AlternativeCode *string `gorm:"type:varchar(30);index:idx_requests_alternative"`
	DayCount        float64 `gorm:"type:numeric(5,1);not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index:idx_requests_status"`

	// Routing is captured at submission so later roster role changes do not
	// re-route an in-flight request.
	RequesterRole  string `gorm:"type:varchar(30);not null"`
	RequiredLevels string `gorm:"type:varchar(100);not null"`

	Approvals []Approval `gorm:"foreignKey:RequestID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DecidedAt *time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Request) TableName() string {
	return "requests"
}

// Approval is one sign-off record; the sequence per request is append-only.
type Approval struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID       uuid.UUID `gorm:"type:uuid;not null;index:idx_approvals_request"`
	Seq             int       `gorm:"type:int;not null"`
	Level           string    `gorm:"type:varchar(20);not null"`
	Outcome         string    `gorm:"type:varchar(20);not null"`
	ApproverCode    string    `gorm:"type:varchar(30);not null"`
	ApproverName    string    `gorm:"type:varchar(255);not null"`
	RejectionReason *string   `gorm:"type:text"`
	CreatedAt       time.Time
}

func (Approval) TableName() string {
	return "request_approvals"
}

// IsTerminal reports whether the request can no longer transition.
func (r *Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// RequiredLevelList returns the routing captured at submission, in order.
func (r *Request) RequiredLevelList() []string {
	if r.RequiredLevels == "" {
		return nil
	}
	return strings.Split(r.RequiredLevels, ",")
}

// NextLevel returns the first routing level without an approved record, or
// "" when every level is satisfied.
func (r *Request) NextLevel() string {
	approved := 0
	for _, a := range r.Approvals {
		if a.Outcome == StatusApproved {
			approved++
		}
	}
	levels := r.RequiredLevelList()
	if approved >= len(levels) {
		return ""
	}
	return levels[approved]
}

// TimeBounded reports whether the request carries a time-of-day span.
func (r *Request) TimeBounded() bool {
	return r.StartTime != nil && r.EndTime != nil
}

// CoversDate reports whether the request's date span contains the given
// calendar date.
func (r *Request) CoversDate(date time.Time) bool {
	return !date.Before(r.StartDate) && !date.After(r.EndDate)
}
