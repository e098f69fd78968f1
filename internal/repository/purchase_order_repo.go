package repository

import (
	"context"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseOrderRepository interface {
	CreateTx(tx *gorm.DB, o *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error)
	List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error)
	CountOpen(ctx context.Context) (int64, error)
	CountActiveBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)

	// LastNumberForPrefixTx returns the highest existing po_number with the
	// given prefix, locking the matching row so two concurrent creations
	// cannot both observe the same predecessor. Returns "" when the year
	// has no orders yet.
	LastNumberForPrefixTx(tx *gorm.DB, prefix string) (string, error)

	UpdateTx(tx *gorm.DB, o *model.PurchaseOrder) error
	ReplaceItemsTx(tx *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	SetStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) CreateTx(tx *gorm.DB, o *model.PurchaseOrder) error {
	return tx.Create(o).Error
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	var o model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Items").Preload("Supplier").
		First(&o, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *purchaseOrderRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.PurchaseOrder, error) {
	var o model.PurchaseOrder
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("purchase_order_id = ?", id).Find(&o.Items).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PurchaseOrder{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.SupplierID != "" {
		q = q.Where("supplier_id = ?", filter.SupplierID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.PurchaseOrder
	err := q.Preload("Items").Preload("Supplier").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&orders).Error
	return orders, total, err
}

func (r *purchaseOrderRepo) CountOpen(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("status IN ('pending', 'approved')").Count(&n).Error
	return n, err
}

func (r *purchaseOrderRepo) CountActiveBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("supplier_id = ? AND status <> 'cancelled'", supplierID).Count(&n).Error
	return n, err
}

func (r *purchaseOrderRepo) LastNumberForPrefixTx(tx *gorm.DB, prefix string) (string, error) {
	var o model.PurchaseOrder
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("po_number LIKE ?", prefix+"%").
		Order("po_number DESC").
		First(&o).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return o.PONumber, nil
}

func (r *purchaseOrderRepo) UpdateTx(tx *gorm.DB, o *model.PurchaseOrder) error {
	return tx.Omit("Items", "Supplier").Save(o).Error
}

// ReplaceItemsTx deletes the existing item set and inserts the
// replacement inside the caller's transaction.
func (r *purchaseOrderRepo) ReplaceItemsTx(tx *gorm.DB, orderID uuid.UUID, items []model.PurchaseOrderItem) error {
	if err := tx.Where("purchase_order_id = ?", orderID).
		Delete(&model.PurchaseOrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].PurchaseOrderID = orderID
	}
	return tx.Create(&items).Error
}

func (r *purchaseOrderRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *purchaseOrderRepo) SetStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.PurchaseOrder{}).Where("id = ?", id).Update("status", status).Error
}
