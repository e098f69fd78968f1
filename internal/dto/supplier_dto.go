package dto

// SupplierFilter is bound from the query string of GET /v1/suppliers.
type SupplierFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type SupplierRequest struct {
	CompanyName  string  `json:"company_name"  validate:"required,max=100"`
	ContactName  *string `json:"contact_name"  validate:"omitempty,max=100"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Phone        *string `json:"phone"         validate:"omitempty,max=30"`
	Address      *string `json:"address"       validate:"omitempty,max=255"`
	PaymentTerms *string `json:"payment_terms" validate:"omitempty,max=100"`
}

type SupplierResponse struct {
	ID           string  `json:"id"`
	CompanyName  string  `json:"company_name"`
	ContactName  *string `json:"contact_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	PaymentTerms *string `json:"payment_terms,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}
