package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Recipe is a bill of materials mapping a sellable item to ingredient
// products. The ingredient set is replaced wholesale on edit, mirroring
// purchase-order item semantics.
type Recipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"not null"`
	Category     *string
	Description  *string
	PrepTime     *int
	CookTime     *int
	Servings     *int
	Instructions *string
	Status       string    `gorm:"not null;default:'active'"` // active | inactive | draft | deleted
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
}

// RecipeIngredient is one (product, quantity, unit) line of a recipe.
type RecipeIngredient struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RecipeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,3);not null"`
	Unit      string          `gorm:"not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
