package model

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for the menu and reports.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description *string
	Status      string `gorm:"not null;default:'active'"` // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Category) TableName() string { return "categories" }
