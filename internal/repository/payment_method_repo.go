package repository

import (
	"context"

	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error)
	ListActive(ctx context.Context) ([]model.PaymentMethod, error)
}

type paymentMethodRepo struct{ db *gorm.DB }

func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return &paymentMethodRepo{db: db}
}

func (r *paymentMethodRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	var pm model.PaymentMethod
	err := r.db.WithContext(ctx).First(&pm, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *paymentMethodRepo) ListActive(ctx context.Context) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name ASC").Find(&methods).Error
	return methods, err
}
