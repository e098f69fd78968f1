package repository

import (
	"context"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	// FindForEmployeeOn returns the employee's schedule for the given
	// date, or gorm.ErrRecordNotFound. There is at most one.
	FindForEmployeeOn(ctx context.Context, employeeID uuid.UUID, day time.Time) (*model.Schedule, error)
	List(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, int64, error)
}

type scheduleRepo struct{ db *gorm.DB }

func NewScheduleRepository(db *gorm.DB) ScheduleRepository { return &scheduleRepo{db: db} }

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *scheduleRepo) FindForEmployeeOn(ctx context.Context, employeeID uuid.UUID, day time.Time) (*model.Schedule, error) {
	var s model.Schedule
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND schedule_date = DATE(?)", employeeID, day).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *scheduleRepo) List(ctx context.Context, filter dto.ScheduleFilter) ([]model.Schedule, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Schedule{})
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != "" {
		q = q.Where("schedule_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("schedule_date <= ?", filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schedules []model.Schedule
	err := q.Preload("Employee").
		Order("schedule_date ASC, shift_start ASC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&schedules).Error
	return schedules, total, err
}
