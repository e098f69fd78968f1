package dto

import "github.com/shopspring/decimal"

// CartItemRequest is one checkout line. Exactly one of ProductID /
// RecipeID should be set; Name is required only when the line is not
// product-backed (product lines snapshot the catalog name).
type CartItemRequest struct {
	ProductID *string         `json:"product_id" validate:"omitempty,uuid"`
	RecipeID  *string         `json:"recipe_id"  validate:"omitempty,uuid"`
	Name      string          `json:"name"       validate:"max=100"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"min=0"`
}

// CheckoutRequest is the body of POST /v1/pos/transactions.
type CheckoutRequest struct {
	Items           []CartItemRequest `json:"items"             validate:"required,min=1,dive"`
	PaymentMethodID string            `json:"payment_method_id" validate:"required,uuid"`
	AmountPaid      decimal.Decimal   `json:"amount_paid"       validate:"min=0"`
	DiscountAmount  decimal.Decimal   `json:"discount_amount"   validate:"min=0"`
	// TaxRate is a percentage; zero means "use the configured default".
	TaxRate *decimal.Decimal `json:"tax_rate" validate:"omitempty"`
}

// CheckoutItemResponse echoes one persisted transaction item.
type CheckoutItemResponse struct {
	ItemName   string          `json:"item_name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CheckoutResponse is the committed transaction plus computed totals.
type CheckoutResponse struct {
	TransactionID     string                 `json:"transaction_id"`
	TransactionNumber string                 `json:"transaction_number"`
	Items             []CheckoutItemResponse `json:"items"`
	Subtotal          decimal.Decimal        `json:"subtotal"`
	TaxRate           decimal.Decimal        `json:"tax_rate"`
	TaxAmount         decimal.Decimal        `json:"tax_amount"`
	DiscountAmount    decimal.Decimal        `json:"discount_amount"`
	TotalAmount       decimal.Decimal        `json:"total_amount"`
	AmountPaid        decimal.Decimal        `json:"amount_paid"`
	ChangeGiven       decimal.Decimal        `json:"change_given"`
	Status            string                 `json:"status"`
	CreatedAt         string                 `json:"created_at"`
}

// TransactionFilter is bound from the query string of GET /v1/pos/transactions.
type TransactionFilter struct {
	Date   string `form:"date"`
	Status string `form:"status"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}
