package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles assignable to staff accounts.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// User stores staff accounts with role-based access.
// Role: "admin" | "agent"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
