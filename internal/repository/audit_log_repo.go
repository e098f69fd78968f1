package repository

import (
	"context"

	"stockli/internal/model"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, l *model.AuditLog) error
	CreateAlert(ctx context.Context, a *model.Alert) error
	ListAlerts(ctx context.Context, unreadOnly bool, limit int) ([]model.Alert, error)
}

type auditLogRepo struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository { return &auditLogRepo{db: db} }

func (r *auditLogRepo) Create(ctx context.Context, l *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *auditLogRepo) CreateAlert(ctx context.Context, a *model.Alert) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditLogRepo) ListAlerts(ctx context.Context, unreadOnly bool, limit int) ([]model.Alert, error) {
	q := r.db.WithContext(ctx).Model(&model.Alert{}).Where("is_dismissed = false")
	if unreadOnly {
		q = q.Where("is_read = false")
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var alerts []model.Alert
	err := q.Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
