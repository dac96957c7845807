package model

import (
	"time"

	"github.com/google/uuid"
)

// Visitor presence statuses. Transitions are deliberately unordered: staff
// may set any value at any time to correct mistakes at the front desk.
const (
	StatusPending = "Pending"
	StatusEntered = "Entered"
	StatusExited  = "Exited"
)

// ValidStatus reports whether s is one of the three enumerated statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusEntered || s == StatusExited
}

// Visitor is a single registration of a physical person, identified by CIN.
type Visitor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"not null"`
	CIN            string    `gorm:"column:cin;uniqueIndex;not null"`
	Phone          string    `gorm:"not null"`
	Reason         string    `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	RegisteredByID uuid.UUID `gorm:"type:uuid;not null;index"`
	RegisteredBy   *User     `gorm:"foreignKey:RegisteredByID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
