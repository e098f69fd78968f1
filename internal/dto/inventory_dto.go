package dto

import "github.com/shopspring/decimal"

// StockMovementRequest is the body of POST /v1/inventory/stock-movements.
type StockMovementRequest struct {
	ProductID    string           `json:"product_id"    validate:"required,uuid"`
	MovementType string           `json:"movement_type" validate:"required,oneof=in out adjustment transfer expired damaged"`
	Quantity     int              `json:"quantity"      validate:"required,min=1"`
	UnitCost     *decimal.Decimal `json:"unit_cost"     validate:"omitempty"`
	Notes        string           `json:"notes"         validate:"max=255"`
}

// StockMovementResponse reports the applied delta.
type StockMovementResponse struct {
	OldQuantity      int `json:"old_quantity"`
	NewQuantity      int `json:"new_quantity"`
	MovementQuantity int `json:"movement_quantity"`
}

// MovementListItem is one ledger row in listings.
type MovementListItem struct {
	ID           string           `json:"id"`
	ProductID    string           `json:"product_id"`
	ProductName  string           `json:"product_name"`
	MovementType string           `json:"movement_type"`
	Quantity     int              `json:"quantity"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    string           `json:"created_at"`
}

// LowStockItem is one row of the low-stock report.
type LowStockItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SKU           string `json:"sku"`
	StockQuantity int    `json:"stock_quantity"`
	ReorderPoint  int    `json:"reorder_point"`
	Shortage      int    `json:"shortage"`
}
