package dto

import "github.com/shopspring/decimal"

// OrderItemRequest is one purchase-order line.
type OrderItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
}

// CreateOrderRequest is the body of POST /v1/purchase-orders.
type CreateOrderRequest struct {
	SupplierID       string             `json:"supplier_id"       validate:"required,uuid"`
	Items            []OrderItemRequest `json:"items"             validate:"required,min=1,dive"`
	ExpectedDelivery *string            `json:"expected_delivery" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string            `json:"notes"             validate:"omitempty,max=500"`
}

// CreateOrderResponse returns the allocated number and computed total.
type CreateOrderResponse struct {
	ID          string          `json:"id"`
	PONumber    string          `json:"po_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// AmendOrderRequest updates scalar fields and/or replaces the item set.
// Nil fields are left untouched.
type AmendOrderRequest struct {
	SupplierID       *string            `json:"supplier_id"       validate:"omitempty,uuid"`
	ExpectedDelivery *string            `json:"expected_delivery" validate:"omitempty,datetime=2006-01-02"`
	Notes            *string            `json:"notes"             validate:"omitempty,max=500"`
	Items            []OrderItemRequest `json:"items"             validate:"omitempty,min=1,dive"`
}

// SetOrderStatusRequest is the body of PATCH /v1/purchase-orders/:id.
type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved sent delivered cancelled"`
}

// PurchaseOrderFilter is bound from the query string of the listing.
type PurchaseOrderFilter struct {
	Status     string `form:"status"     validate:"omitempty,oneof=pending approved sent delivered cancelled"`
	SupplierID string `form:"supplier_id" validate:"omitempty,uuid"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=10" validate:"min=1,max=100"`
}

// OrderItemResponse is one line of a returned order.
type OrderItemResponse struct {
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PurchaseOrderResponse is the full order view.
type PurchaseOrderResponse struct {
	ID               string              `json:"id"`
	PONumber         string              `json:"po_number"`
	SupplierID       string              `json:"supplier_id"`
	SupplierName     string              `json:"supplier_name,omitempty"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	ExpectedDelivery *string             `json:"expected_delivery,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
	Status           string              `json:"status"`
	Items            []OrderItemResponse `json:"items"`
	CreatedAt        string              `json:"created_at"`
}
