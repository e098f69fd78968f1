package repository

import (
	"context"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesSummaryRow aggregates one day of completed transactions.
type SalesSummaryRow struct {
	TransactionCount int64
	TotalSales       decimal.Decimal
	TotalTax         decimal.Decimal
	AverageSale      decimal.Decimal
}

// PaymentBreakdownRow is one payment method's share of a day.
type PaymentBreakdownRow struct {
	Name  string
	Count int64
	Total decimal.Decimal
}

type TransactionRepository interface {
	CreateTx(tx *gorm.DB, t *model.SalesTransaction) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SalesTransaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	List(ctx context.Context, filter dto.TransactionFilter) ([]model.SalesTransaction, int64, error)
	ListRecent(ctx context.Context, day time.Time, limit int) ([]model.SalesTransaction, error)
	DailySummary(ctx context.Context, day time.Time) (*SalesSummaryRow, error)
	PaymentBreakdown(ctx context.Context, day time.Time) ([]PaymentBreakdownRow, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

// CreateTx inserts the transaction and its items in one statement batch;
// GORM cascades the Items association with the generated parent id.
func (r *transactionRepo) CreateTx(tx *gorm.DB, t *model.SalesTransaction) error {
	return tx.Create(t).Error
}

func (r *transactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.SalesTransaction, error) {
	var t model.SalesTransaction
	err := r.db.WithContext(ctx).Preload("Items").Preload("PaymentMethod").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transactionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.SalesTransaction{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *transactionRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.SalesTransaction{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *transactionRepo) List(ctx context.Context, filter dto.TransactionFilter) ([]model.SalesTransaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.SalesTransaction{})

	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []model.SalesTransaction
	err := q.Preload("Items").Preload("PaymentMethod").
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&txns).Error
	return txns, total, err
}

func (r *transactionRepo) ListRecent(ctx context.Context, day time.Time, limit int) ([]model.SalesTransaction, error) {
	var txns []model.SalesTransaction
	err := r.db.WithContext(ctx).Preload("Items").
		Where("DATE(created_at) = DATE(?)", day).
		Order("created_at DESC").Limit(limit).Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) DailySummary(ctx context.Context, day time.Time) (*SalesSummaryRow, error) {
	var row SalesSummaryRow
	err := r.db.WithContext(ctx).Model(&model.SalesTransaction{}).
		Select(`COUNT(*) as transaction_count,
			COALESCE(SUM(total_amount), 0) as total_sales,
			COALESCE(SUM(tax_amount), 0) as total_tax,
			COALESCE(AVG(total_amount), 0) as average_sale`).
		Where("DATE(created_at) = DATE(?) AND status = 'completed'", day).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *transactionRepo) PaymentBreakdown(ctx context.Context, day time.Time) ([]PaymentBreakdownRow, error) {
	var rows []PaymentBreakdownRow
	err := r.db.WithContext(ctx).Model(&model.SalesTransaction{}).
		Select(`payment_methods.name, COUNT(*) as count, COALESCE(SUM(sales_transactions.total_amount), 0) as total`).
		Joins("JOIN payment_methods ON payment_methods.id = sales_transactions.payment_method_id").
		Where("DATE(sales_transactions.created_at) = DATE(?) AND sales_transactions.status = 'completed'", day).
		Group("payment_methods.id, payment_methods.name").
		Order("total DESC").
		Scan(&rows).Error
	return rows, err
}
