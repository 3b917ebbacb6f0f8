package employee

import (
	"context"
	"errors"

	employeeerrors "go-bookingdesk/internal/employee/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	// Validate resolves a claimed employee id for the booking form's pre-check.
	Validate(ctx context.Context, employeeID string) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Validate(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	e, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("validate employee not found", zap.String("employee_id", employeeID))
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("validate employee lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	return mapToResponse(*e), nil
}
