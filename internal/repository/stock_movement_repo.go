package repository

import (
	"context"
	"time"

	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementFilter narrows the movement listing.
type StockMovementFilter struct {
	ProductID    *uuid.UUID
	MovementType string
	Page         int
	Limit        int
}

// StockMovementRepository is the append-only ledger contract. There is
// deliberately no Update or Delete: a written movement is immutable.
type StockMovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.StockMovement) error
	List(ctx context.Context, filter StockMovementFilter) ([]model.StockMovement, int64, error)
	ListRecent(ctx context.Context, since time.Time, limit int) ([]model.StockMovement, error)
	SumForProduct(ctx context.Context, productID uuid.UUID) (int, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) CreateTx(tx *gorm.DB, m *model.StockMovement) error {
	return tx.Create(m).Error
}

func (r *stockMovementRepo) List(ctx context.Context, filter StockMovementFilter) ([]model.StockMovement, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.StockMovement{}).Preload("Product")
	if filter.ProductID != nil {
		q = q.Where("product_id = ?", *filter.ProductID)
	}
	if filter.MovementType != "" {
		q = q.Where("movement_type = ?", filter.MovementType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var movements []model.StockMovement
	err := q.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&movements).Error
	return movements, total, err
}

func (r *stockMovementRepo) ListRecent(ctx context.Context, since time.Time, limit int) ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.WithContext(ctx).Preload("Product").
		Where("created_at >= ?", since).
		Order("created_at DESC").Limit(limit).Find(&movements).Error
	return movements, err
}

// SumForProduct returns the signed sum of all ledger entries for a
// product, for consistency checks against products.stock_quantity.
func (r *stockMovementRepo) SumForProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var sum *int
	err := r.db.WithContext(ctx).Model(&model.StockMovement{}).
		Select(`COALESCE(SUM(CASE WHEN movement_type IN ('in','adjustment') THEN quantity ELSE -quantity END), 0)`).
		Where("product_id = ?", productID).
		Scan(&sum).Error
	if err != nil || sum == nil {
		return 0, err
	}
	return *sum, nil
}
