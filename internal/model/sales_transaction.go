package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesTransaction statuses.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionRefunded  = "refunded"
	TransactionCancelled = "cancelled"
)

// SalesTransaction is one POS checkout. Monetary fields are immutable
// after creation; only Status may transition.
type SalesTransaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionNumber string          `gorm:"uniqueIndex;not null"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TaxRate           decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	PaymentMethodID   uuid.UUID       `gorm:"type:uuid;not null"`
	ServedBy          uuid.UUID       `gorm:"type:uuid;not null"`
	Status            string          `gorm:"not null;default:'pending'"`
	CreatedAt         time.Time

	Items         []TransactionItem `gorm:"foreignKey:TransactionID"`
	PaymentMethod *PaymentMethod    `gorm:"foreignKey:PaymentMethodID"`
	Server        *User             `gorm:"foreignKey:ServedBy"`
}

// TransactionItem is one cart line. ItemName is a snapshot of the product
// or recipe name at sale time, not a live reference. Exactly one of
// ProductID / RecipeID is expected to be set.
type TransactionItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     *uuid.UUID      `gorm:"type:uuid"`
	RecipeID      *uuid.UUID      `gorm:"type:uuid"`
	ItemName      string          `gorm:"not null"`
	Quantity      int             `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
}
