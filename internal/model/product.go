package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product lifecycle states. Products are never physically deleted —
// removal is a transition to StatusDeleted.
const (
	ProductActive       = "active"
	ProductInactive     = "inactive"
	ProductDiscontinued = "discontinued"
	ProductDeleted      = "deleted"
)

// Product is the catalog entry holding the current stock level.
// StockQuantity is mutated exclusively through the inventory service so
// that every change has a matching StockMovement ledger row.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"index;not null"`
	SKU           string    `gorm:"column:sku;uniqueIndex;not null"`
	Description   *string
	CategoryID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	SupplierID    *uuid.UUID       `gorm:"type:uuid;index"`
	SellingPrice  decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	CostPrice     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	StockQuantity int              `gorm:"not null;default:0"`
	MinStockLevel int              `gorm:"not null;default:0"`
	ReorderPoint  int              `gorm:"not null;default:5"`
	Status        string           `gorm:"not null;default:'active'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID"`
}

// IsLowStock reports whether the product needs reordering. Recomputed on
// every read, never stored.
func (p *Product) IsLowStock() bool {
	return p.Status == ProductActive && p.StockQuantity <= p.ReorderPoint
}
