package repository

import (
	"context"

	"stockli/internal/dto"
	"stockli/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, e *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByNumber(ctx context.Context, number string) (*model.Employee, error)
	List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, int64, error)
	Update(ctx context.Context, e *model.Employee) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type employeeRepo struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository { return &employeeRepo{db: db} }

func (r *employeeRepo) Create(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("id = ? AND status = 'active'", id).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) FindByNumber(ctx context.Context, number string) (*model.Employee, error) {
	var e model.Employee
	err := r.db.WithContext(ctx).Where("employee_number = ?", number).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context, filter dto.EmployeeFilter) ([]model.Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("first_name ILIKE ? OR last_name ILIKE ? OR employee_number ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []model.Employee
	err := q.Order("last_name ASC, first_name ASC").
		Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit).
		Find(&employees).Error
	return employees, total, err
}

func (r *employeeRepo) Update(ctx context.Context, e *model.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *employeeRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).Update("status", model.EmployeeInactive).Error
}
