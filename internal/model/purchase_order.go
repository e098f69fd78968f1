package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOrder statuses. Forward path is pending → approved → sent →
// delivered; cancelled is reachable from any non-terminal state.
// Delivered and cancelled orders can no longer be amended.
const (
	OrderPending   = "pending"
	OrderApproved  = "approved"
	OrderSent      = "sent"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderApproved, OrderSent, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderTerminal reports whether s blocks further amendment.
func OrderTerminal(s string) bool {
	return s == OrderDelivered || s == OrderCancelled
}

// PurchaseOrder carries a year-scoped sequential number in the form
// PO-<YYYY><NNN>. TotalAmount is always recomputed from the item lines,
// never edited independently.
type PurchaseOrder struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PONumber         string          `gorm:"column:po_number;uniqueIndex;not null"`
	SupplierID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ExpectedDelivery *time.Time
	Notes            *string
	Status           string    `gorm:"not null;default:'pending'"`
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items    []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID"`
	Supplier *Supplier           `gorm:"foreignKey:SupplierID"`
}

// PurchaseOrderItem is one order line. The item set is replaced wholesale
// on amendment; TotalPrice is always quantity × unit price.
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TotalPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
