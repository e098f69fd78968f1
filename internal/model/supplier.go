package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier holds purchasing contact data. Soft-deleted via Status so that
// historical purchase orders keep a valid reference.
type Supplier struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyName  string    `gorm:"not null"`
	ContactName  *string
	Email        *string
	Phone        *string
	Address      *string
	PaymentTerms *string
	Status       string `gorm:"not null;default:'active'"` // active | inactive | deleted
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Products []Product `gorm:"foreignKey:SupplierID"`
}
