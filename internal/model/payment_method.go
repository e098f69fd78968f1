package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a tender type accepted at the POS.
type PaymentMethod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Type      string    `gorm:"not null"` // cash | card | digital | voucher | other
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}
