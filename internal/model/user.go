package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User is a back-office account. The core never derives identity itself;
// the performer/creator id always arrives from the auth layer.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FirstName    string    `gorm:"not null"`
	LastName     string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'staff'"`
	Status       string    `gorm:"not null;default:'active'"` // active | inactive | suspended
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
