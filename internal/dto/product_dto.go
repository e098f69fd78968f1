package dto

import "github.com/shopspring/decimal"

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Status     string `form:"status"      validate:"omitempty,oneof=active inactive discontinued"`
	CategoryID string `form:"category_id" validate:"omitempty,uuid"`
	Search     string `form:"search"`
	LowStock   bool   `form:"low_stock"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type CreateProductRequest struct {
	Name          string           `json:"name"           validate:"required,max=100"`
	SKU           string           `json:"sku"            validate:"required,max=50"`
	Description   *string          `json:"description"    validate:"omitempty,max=500"`
	CategoryID    string           `json:"category_id"    validate:"required,uuid"`
	SupplierID    *string          `json:"supplier_id"    validate:"omitempty,uuid"`
	SellingPrice  decimal.Decimal  `json:"selling_price"  validate:"min=0"`
	CostPrice     *decimal.Decimal `json:"cost_price"     validate:"omitempty"`
	StockQuantity int              `json:"stock_quantity" validate:"min=0"`
	MinStockLevel int              `json:"min_stock_level" validate:"min=0"`
	ReorderPoint  int              `json:"reorder_point"  validate:"min=0"`
}

type UpdateProductRequest struct {
	Name          *string          `json:"name"            validate:"omitempty,max=100"`
	Description   *string          `json:"description"     validate:"omitempty,max=500"`
	CategoryID    *string          `json:"category_id"     validate:"omitempty,uuid"`
	SupplierID    *string          `json:"supplier_id"     validate:"omitempty,uuid"`
	SellingPrice  *decimal.Decimal `json:"selling_price"   validate:"omitempty"`
	CostPrice     *decimal.Decimal `json:"cost_price"      validate:"omitempty"`
	MinStockLevel *int             `json:"min_stock_level" validate:"omitempty,min=0"`
	ReorderPoint  *int             `json:"reorder_point"   validate:"omitempty,min=0"`
	Status        *string          `json:"status"          validate:"omitempty,oneof=active inactive discontinued"`
}

type ProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	SKU           string           `json:"sku"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    string           `json:"category_id"`
	CategoryName  string           `json:"category_name,omitempty"`
	SupplierID    *string          `json:"supplier_id,omitempty"`
	SellingPrice  decimal.Decimal  `json:"selling_price"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	StockQuantity int              `json:"stock_quantity"`
	MinStockLevel int              `json:"min_stock_level"`
	ReorderPoint  int              `json:"reorder_point"`
	Status        string           `json:"status"`
	LowStock      bool             `json:"low_stock"`
	CreatedAt     string           `json:"created_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

type CategoryRequest struct {
	Name        string  `json:"name"        validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}
