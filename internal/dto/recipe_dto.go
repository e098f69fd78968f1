package dto

import "github.com/shopspring/decimal"

// IngredientRequest is one (product, quantity, unit) recipe line.
type IngredientRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	Unit      string          `json:"unit"       validate:"required,max=20"`
}

type CreateRecipeRequest struct {
	Name         string              `json:"name"         validate:"required,max=100"`
	Category     *string             `json:"category"     validate:"omitempty,max=50"`
	Description  *string             `json:"description"  validate:"omitempty,max=500"`
	PrepTime     *int                `json:"prep_time"    validate:"omitempty,min=1"`
	CookTime     *int                `json:"cook_time"    validate:"omitempty,min=1"`
	Servings     *int                `json:"servings"     validate:"omitempty,min=1"`
	Instructions *string             `json:"instructions" validate:"omitempty,max=2000"`
	Status       string              `json:"status"       validate:"omitempty,oneof=active inactive draft"`
	Ingredients  []IngredientRequest `json:"ingredients"  validate:"required,min=1,dive"`
}

// UpdateRecipeRequest: nil scalar fields are untouched; a non-nil
// Ingredients slice replaces the whole set.
type UpdateRecipeRequest struct {
	Name         *string             `json:"name"         validate:"omitempty,max=100"`
	Category     *string             `json:"category"     validate:"omitempty,max=50"`
	Description  *string             `json:"description"  validate:"omitempty,max=500"`
	PrepTime     *int                `json:"prep_time"    validate:"omitempty,min=1"`
	CookTime     *int                `json:"cook_time"    validate:"omitempty,min=1"`
	Servings     *int                `json:"servings"     validate:"omitempty,min=1"`
	Instructions *string             `json:"instructions" validate:"omitempty,max=2000"`
	Status       *string             `json:"status"       validate:"omitempty,oneof=active inactive draft"`
	Ingredients  []IngredientRequest `json:"ingredients"  validate:"omitempty,min=1,dive"`
}

type RecipeFilter struct {
	Category string `form:"category"`
	Status   string `form:"status" validate:"omitempty,oneof=active inactive draft"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type IngredientResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
}

type RecipeResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Category    *string              `json:"category,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      string               `json:"status"`
	Ingredients []IngredientResponse `json:"ingredients"`
	// EstimatedCost is Σ ingredient quantity × product cost price, for
	// lines whose product has a cost price on file.
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	CreatedAt     string          `json:"created_at"`
}
