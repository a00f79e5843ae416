package holiday

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePublic   = "public"
	TypeRegional = "regional"
)

// Holiday is read-only input surfaced alongside requests; holidays never
// block a submission.
type Holiday struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"type:varchar(255);not null"`
	FromDate time.Time `gorm:"type:date;not null;index:idx_holidays_range"`
	ToDate   time.Time `gorm:"type:date;not null;index:idx_holidays_range"`
	Type     string    `gorm:"type:varchar(20);not null;default:'public'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
