package employee

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	// FindByEmployeeID matches the business identifier case-insensitively.
	// The identifier is compared as a fixed string, never as a pattern.
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("LOWER(employee_id) = LOWER(?)", strings.TrimSpace(employeeID)).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ? OR LOWER(email) = LOWER(?)", strings.TrimSpace(employeeID), strings.TrimSpace(email)).
		First(&e).Error
	return &e, err
}
