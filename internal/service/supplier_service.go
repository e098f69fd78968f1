package service

import (
	"context"
	"errors"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.SupplierRequest) (*model.Supplier, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, int64, error)
	Update(ctx context.Context, id uuid.UUID, req dto.SupplierRequest) (*model.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	orders    repository.PurchaseOrderRepository
}

func NewSupplierService(
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	orders repository.PurchaseOrderRepository,
) SupplierService {
	return &supplierService{suppliers: suppliers, products: products, orders: orders}
}

func (s *supplierService) Create(ctx context.Context, req dto.SupplierRequest) (*model.Supplier, error) {
	sup := &model.Supplier{
		CompanyName:  req.CompanyName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PaymentTerms: req.PaymentTerms,
		Status:       "active",
	}
	if err := s.suppliers.Create(ctx, sup); err != nil {
		return nil, persistencef("insert supplier", err)
	}
	return sup, nil
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	sup, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, persistencef("find supplier", err)
	}
	if sup.Status == "deleted" {
		return nil, ErrNotFound
	}
	return sup, nil
}

func (s *supplierService) List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, int64, error) {
	return s.suppliers.List(ctx, filter)
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.SupplierRequest) (*model.Supplier, error) {
	sup, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sup.CompanyName = req.CompanyName
	sup.ContactName = req.ContactName
	sup.Email = req.Email
	sup.Phone = req.Phone
	sup.Address = req.Address
	sup.PaymentTerms = req.PaymentTerms
	if err := s.suppliers.Update(ctx, sup); err != nil {
		return nil, persistencef("update supplier", err)
	}
	return sup, nil
}

// Delete refuses while the supplier still has active products or
// non-cancelled purchase orders; otherwise it soft-deletes.
func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	nProducts, err := s.products.CountBySupplier(ctx, id)
	if err != nil {
		return persistencef("count supplier products", err)
	}
	if nProducts > 0 {
		return validationf("supplier still has %d active products", nProducts)
	}
	nOrders, err := s.orders.CountActiveBySupplier(ctx, id)
	if err != nil {
		return persistencef("count supplier orders", err)
	}
	if nOrders > 0 {
		return validationf("supplier still has %d active purchase orders", nOrders)
	}
	if err := s.suppliers.SoftDelete(ctx, id); err != nil {
		return persistencef("delete supplier", err)
	}
	return nil
}
