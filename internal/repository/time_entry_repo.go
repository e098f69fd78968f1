package repository

import (
	"context"
	"time"

	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, e *model.TimeEntry) error
	// FindOpenByEmployee returns the employee's entry that has not been
	// clocked out yet, or gorm.ErrRecordNotFound.
	FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error)
	Update(ctx context.Context, e *model.TimeEntry) error
	ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.TimeEntry, error)
}

type timeEntryRepo struct{ db *gorm.DB }

func NewTimeEntryRepository(db *gorm.DB) TimeEntryRepository { return &timeEntryRepo{db: db} }

func (r *timeEntryRepo) Create(ctx context.Context, e *model.TimeEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *timeEntryRepo) FindOpenByEmployee(ctx context.Context, employeeID uuid.UUID) (*model.TimeEntry, error) {
	var e model.TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND clock_out IS NULL", employeeID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *timeEntryRepo) Update(ctx context.Context, e *model.TimeEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *timeEntryRepo) ListByEmployee(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]model.TimeEntry, error) {
	var entries []model.TimeEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND clock_in >= ? AND clock_in < ?", employeeID, from, to).
		Order("clock_in DESC").
		Find(&entries).Error
	return entries, err
}
