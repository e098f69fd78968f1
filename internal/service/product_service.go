package service

import (
	"context"
	"errors"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductService manages the catalog. Stock quantities are read here but
// only ever written through the inventory service.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*model.Category, error)
	DeactivateCategory(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

func NewProductService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
) ProductService {
	return &productService{products: products, categories: categories, suppliers: suppliers}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, validationf("category_id is not a valid uuid")
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find category", err)
	}

	var supplierID *uuid.UUID
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, validationf("supplier_id is not a valid uuid")
		}
		if _, err := s.suppliers.FindActiveByID(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find supplier", err)
		}
		supplierID = &sid
	}

	// SKU must be unique among non-deleted products.
	if _, err := s.products.FindBySKU(ctx, req.SKU); err == nil {
		return nil, validationf("sku %q is already in use", req.SKU)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, persistencef("check sku", err)
	}

	p := &model.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		CategoryID:    categoryID,
		SupplierID:    supplierID,
		SellingPrice:  req.SellingPrice,
		CostPrice:     req.CostPrice,
		StockQuantity: req.StockQuantity,
		MinStockLevel: req.MinStockLevel,
		ReorderPoint:  req.ReorderPoint,
		Status:        model.ProductActive,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, persistencef("insert product", err)
	}
	return p, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find product", err)
	}
	if p.Status == model.ProductDeleted {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	return s.products.List(ctx, filter)
}

// Update applies non-nil fields. SKU and StockQuantity are deliberately
// absent from the request type: the first is immutable, the second only
// moves through stock movements.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*model.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, validationf("category_id is not a valid uuid")
		}
		if _, err := s.categories.FindByID(ctx, cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find category", err)
		}
		p.CategoryID = cid
	}
	if req.SupplierID != nil {
		sid, err := uuid.Parse(*req.SupplierID)
		if err != nil {
			return nil, validationf("supplier_id is not a valid uuid")
		}
		if _, err := s.suppliers.FindActiveByID(ctx, sid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, persistencef("find supplier", err)
		}
		p.SupplierID = &sid
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return nil, validationf("selling_price must not be negative")
		}
		p.SellingPrice = *req.SellingPrice
	}
	if req.CostPrice != nil {
		if req.CostPrice.IsNegative() {
			return nil, validationf("cost_price must not be negative")
		}
		p.CostPrice = req.CostPrice
	}
	if req.MinStockLevel != nil {
		p.MinStockLevel = *req.MinStockLevel
	}
	if req.ReorderPoint != nil {
		p.ReorderPoint = *req.ReorderPoint
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	p.UpdatedAt = time.Now()

	if err := s.products.Update(ctx, p); err != nil {
		return nil, persistencef("update product", err)
	}
	return p, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.products.SoftDelete(ctx, id); err != nil {
		return persistencef("delete product", err)
	}
	return nil
}

func (s *productService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*model.Category, error) {
	c := &model.Category{Name: req.Name, Description: req.Description, Status: "active"}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, persistencef("insert category", err)
	}
	return c, nil
}

func (s *productService) ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	return s.categories.List(ctx, includeInactive)
}

func (s *productService) UpdateCategory(ctx context.Context, id uuid.UUID, req dto.CategoryRequest) (*model.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find category", err)
	}
	c.Name = req.Name
	c.Description = req.Description
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, persistencef("update category", err)
	}
	return c, nil
}

// DeactivateCategory refuses while products still reference the category.
func (s *productService) DeactivateCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return persistencef("find category", err)
	}
	n, err := s.categories.CountProducts(ctx, id)
	if err != nil {
		return persistencef("count category products", err)
	}
	if n > 0 {
		return validationf("category still has %d products", n)
	}
	if err := s.categories.Deactivate(ctx, id); err != nil {
		return persistencef("deactivate category", err)
	}
	return nil
}
