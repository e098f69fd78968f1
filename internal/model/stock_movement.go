package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock movement types. "in" and "adjustment" add to stock, every other
// type subtracts.
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
	MovementTransfer   = "transfer"
	MovementExpired    = "expired"
	MovementDamaged    = "damaged"
)

// ValidMovementType reports whether t is one of the six movement types.
func ValidMovementType(t string) bool {
	switch t {
	case MovementIn, MovementOut, MovementAdjustment, MovementTransfer, MovementExpired, MovementDamaged:
		return true
	}
	return false
}

// MovementAdds reports whether the type increases stock.
func MovementAdds(t string) bool {
	return t == MovementIn || t == MovementAdjustment
}

// StockMovement is one ledger entry. Quantity is always a positive
// magnitude; direction is implied by MovementType. Rows are append-only:
// the repository exposes no update or delete.
type StockMovement struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	MovementType  string           `gorm:"not null"`
	Quantity      int              `gorm:"not null"`
	UnitCost      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ReferenceType string           `gorm:"not null;default:'adjustment'"` // adjustment | sale | purchase_order
	ReferenceID   *uuid.UUID       `gorm:"type:uuid"`
	Notes         string
	PerformedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
