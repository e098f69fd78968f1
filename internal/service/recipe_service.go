package service

import (
	"context"
	"errors"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeService manages bills of materials and their estimated costing.
type RecipeService interface {
	Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	recipes  repository.RecipeRepository
	products repository.ProductRepository
	txm      repository.TxManager
}

func NewRecipeService(
	recipes repository.RecipeRepository,
	products repository.ProductRepository,
	txm repository.TxManager,
) RecipeService {
	return &recipeService{recipes: recipes, products: products, txm: txm}
}

func (s *recipeService) buildIngredients(ctx context.Context, reqs []dto.IngredientRequest) ([]model.RecipeIngredient, error) {
	out := make([]model.RecipeIngredient, 0, len(reqs))
	for i, ing := range reqs {
		pid, err := uuid.Parse(ing.ProductID)
		if err != nil {
			return nil, validationf("ingredient %d: product_id is not a valid uuid", i)
		}
		if !ing.Quantity.IsPositive() {
			return nil, validationf("ingredient %d: quantity must be positive", i)
		}
		if _, err := s.products.FindByID(ctx, pid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find ingredient product", err)
		}
		out = append(out, model.RecipeIngredient{
			ProductID: pid,
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
		})
	}
	return out, nil
}

func (s *recipeService) Create(ctx context.Context, createdBy uuid.UUID, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if len(req.Ingredients) == 0 {
		return nil, validationf("recipe needs at least one ingredient")
	}
	ingredients, err := s.buildIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = "active"
	}
	rec := &model.Recipe{
		Name:         req.Name,
		Category:     req.Category,
		Description:  req.Description,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Instructions: req.Instructions,
		Status:       status,
		CreatedBy:    createdBy,
		Ingredients:  ingredients,
	}

	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		if err := s.recipes.CreateTx(tx, rec); err != nil {
			return persistencef("insert recipe", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Get(ctx, rec.ID)
}

func (s *recipeService) Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find recipe", err)
	}
	return s.toResponse(ctx, rec), nil
}

// toResponse computes the estimated cost from ingredient cost prices;
// lines without a cost price on file contribute nothing.
func (s *recipeService) toResponse(ctx context.Context, rec *model.Recipe) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:          rec.ID.String(),
		Name:        rec.Name,
		Category:    rec.Category,
		Description: rec.Description,
		Status:      rec.Status,
		CreatedAt:   rec.CreatedAt.Format(time.RFC3339),
	}
	cost := decimal.Zero
	for _, ing := range rec.Ingredients {
		ir := dto.IngredientResponse{
			ProductID: ing.ProductID.String(),
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
		}
		product := ing.Product
		if product == nil {
			product, _ = s.products.FindByID(ctx, ing.ProductID)
		}
		if product != nil {
			ir.ProductName = product.Name
			if product.CostPrice != nil {
				cost = cost.Add(ing.Quantity.Mul(*product.CostPrice))
			}
		}
		resp.Ingredients = append(resp.Ingredients, ir)
	}
	resp.EstimatedCost = cost.Round(2)
	return resp
}

func (s *recipeService) List(ctx context.Context, filter dto.RecipeFilter) ([]model.Recipe, int64, error) {
	return s.recipes.List(ctx, filter)
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	rec, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find recipe", err)
	}

	var newIngredients []model.RecipeIngredient
	if req.Ingredients != nil {
		if len(req.Ingredients) == 0 {
			return nil, validationf("replacement ingredient set must not be empty")
		}
		newIngredients, err = s.buildIngredients(ctx, req.Ingredients)
		if err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		rec.Name = *req.Name
	}
	if req.Category != nil {
		rec.Category = req.Category
	}
	if req.Description != nil {
		rec.Description = req.Description
	}
	if req.PrepTime != nil {
		rec.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		rec.CookTime = req.CookTime
	}
	if req.Servings != nil {
		rec.Servings = req.Servings
	}
	if req.Instructions != nil {
		rec.Instructions = req.Instructions
	}
	if req.Status != nil {
		rec.Status = *req.Status
	}

	txErr := s.txm.RunInTx(ctx, func(tx *gorm.DB) error {
		if req.Ingredients != nil {
			if err := s.recipes.ReplaceIngredientsTx(tx, id, newIngredients); err != nil {
				return persistencef("replace ingredients", err)
			}
		}
		rec.Ingredients = nil
		if err := s.recipes.UpdateTx(tx, rec); err != nil {
			return persistencef("update recipe", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Get(ctx, id)
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.recipes.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistencef("find recipe", err)
	}
	if err := s.recipes.SoftDelete(ctx, id); err != nil {
		return persistencef("delete recipe", err)
	}
	return nil
}
