package repository

import (
	"context"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	CreateTx(tx *gorm.DB, rec *model.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, int64, error)
	UpdateTx(tx *gorm.DB, rec *model.Recipe) error
	ReplaceIngredientsTx(tx *gorm.DB, recipeID uuid.UUID, ingredients []model.RecipeIngredient) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) CreateTx(tx *gorm.DB, rec *model.Recipe) error {
	return tx.Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).Preload("Ingredients.Product").
		First(&rec, "id = ? AND status <> 'deleted'", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("status <> 'deleted'")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	err := q.Preload("Ingredients").Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&recipes).Error
	return recipes, total, err
}

func (r *recipeRepo) UpdateTx(tx *gorm.DB, rec *model.Recipe) error {
	return tx.Omit("Ingredients").Save(rec).Error
}

// ReplaceIngredientsTx mirrors purchase-order item amendment: delete the
// whole set, insert the replacement, same transaction.
func (r *recipeRepo) ReplaceIngredientsTx(tx *gorm.DB, recipeID uuid.UUID, ingredients []model.RecipeIngredient) error {
	if err := tx.Where("recipe_id = ?", recipeID).
		Delete(&model.RecipeIngredient{}).Error; err != nil {
		return err
	}
	for i := range ingredients {
		ingredients[i].RecipeID = recipeID
	}
	return tx.Create(&ingredients).Error
}

func (r *recipeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ?", id).Update("status", "deleted").Error
}
