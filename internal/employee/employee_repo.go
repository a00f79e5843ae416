package employee

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Employee, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Employee, error)
	FindActive(ctx context.Context) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCode(ctx context.Context, code string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		First(&e, "code = ?", code).Error
	return &e, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Employee, error) {
	db := r.db.WithContext(ctx).Model(&Employee{})
	if filter.Department != "" {
		db = db.Where("department = ?", filter.Department)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var employees []Employee
	err := db.Order("code ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusActive).
		Order("code ASC").
		Find(&employees).Error
	return employees, err
}
