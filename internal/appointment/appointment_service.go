package appointment

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	appointmenterrors "go-bookingdesk/internal/appointment/errors"
	"go-bookingdesk/internal/employee"
	"go-bookingdesk/internal/shared/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Notifier is the outbound email collaborator. Delivery is best-effort: a
// returned error is logged and never rolls back the appointment write.
type Notifier interface {
	SendConfirmation(ctx context.Context, appt AppointmentResponse) error
	SendAdminAlert(ctx context.Context, appt AppointmentResponse) error
}

// StatsCache drops the cached dashboard counters after a write changes them.
// redis.Client satisfies it; a nil cache means no dashboard caching is active.
type StatsCache interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Service interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (AppointmentResponse, error)
	GetAll(ctx context.Context) ([]AppointmentResponse, error)
	GetByID(ctx context.Context, id string) (AppointmentResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	directory employee.Repository
	notifier  Notifier
	cache     StatsCache
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, directory employee.Repository, notifier Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("appointment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("appointment.service")
	}
	return &service{db: db, repo: repo, directory: directory, notifier: notifier, logger: l}
}

// NewServiceWithCache additionally invalidates the dashboard stats cache on
// every stored booking, so new submissions show up in the counts as fast as
// admin transitions do.
func NewServiceWithCache(db *sql.DB, repo Repository, directory employee.Repository, notifier Notifier, statsCache StatsCache, logger ...*zap.Logger) Service {
	s := NewService(db, repo, directory, notifier, logger...).(*service)
	s.cache = statsCache
	return s
}

// Create runs the admission decision and persists the submission. A submission
// claiming an employee identity is either verified (auto-approved) or refused
// outright; only unclaimed submissions land as pending for manual review.
func (s *service) Create(ctx context.Context, req CreateAppointmentRequest) (AppointmentResponse, error) {
	s.logger.Debug("create appointment requested",
		zap.String("email", req.Email),
		zap.String("existing_employee_id", req.ExistingEmployeeID),
	)

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return AppointmentResponse{}, appointmenterrors.ErrInvalidDateFormat
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	status, err := s.admit(ctx, req.ExistingEmployeeID, email)
	if err != nil {
		return AppointmentResponse{}, err
	}

	people := req.NumberOfPeople
	if people == 0 {
		people = 1
	}

	a := &Appointment{
		ID:                 uuid.New(),
		AppointmentDate:    date,
		TimeSlot:           req.TimeSlot,
		Name:               strings.TrimSpace(req.Name),
		Email:              email,
		Phone1:             req.Phone1,
		Phone2:             req.Phone2,
		NumberOfPeople:     people,
		ExistingEmployeeID: strings.TrimSpace(req.ExistingEmployeeID),
		Description:        strings.TrimSpace(req.Description),
		Status:             status,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create appointment begin tx failed", zap.Error(err))
		return AppointmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create appointment persist failed", zap.Error(err))
		return AppointmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create appointment commit failed", zap.Error(err))
		return AppointmentResponse{}, err
	}

	s.logger.Info("create appointment success",
		zap.String("appointment_id", a.ID.String()),
		zap.String("status", status),
	)

	s.invalidateStats(ctx)

	resp := mapToResponse(*a)
	s.dispatchEmails(ctx, resp)
	return resp, nil
}

// admit computes the initial status. The identity claim is matched by
// case-insensitive equality on the employee id, then the submission email must
// equal the directory email. An unknown id or a mismatched email refuses the
// submission before anything is stored.
func (s *service) admit(ctx context.Context, claimedEmployeeID, email string) (string, error) {
	if strings.TrimSpace(claimedEmployeeID) == "" {
		return StatusPending, nil
	}

	e, err := s.directory.FindByEmployeeID(ctx, claimedEmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Info("admission refused, employee id unknown",
				zap.String("existing_employee_id", claimedEmployeeID),
			)
			return "", appointmenterrors.ErrInvalidEmployeeID
		}
		s.logger.Error("admission directory lookup failed", zap.Error(err))
		return "", err
	}

	// Directory emails are stored lowercase already.
	if strings.ToLower(e.Email) != email {
		s.logger.Info("admission refused, email mismatch",
			zap.String("existing_employee_id", claimedEmployeeID),
		)
		return "", appointmenterrors.ErrEmailMismatch
	}

	return StatusApproved, nil
}

// dispatchEmails fires the notification fan-out after the write committed.
// The confirmation goes to the requester on every stored submission; the admin
// alert only when the request needs manual review.
func (s *service) dispatchEmails(ctx context.Context, appt AppointmentResponse) {
	if s.notifier == nil {
		return
	}

	if err := s.notifier.SendConfirmation(ctx, appt); err != nil {
		s.logger.Warn("confirmation email failed, appointment saved",
			zap.String("appointment_id", appt.ID),
			zap.Error(err),
		)
	}
	if appt.Status == StatusPending {
		if err := s.notifier.SendAdminAlert(ctx, appt); err != nil {
			s.logger.Warn("admin alert email failed, appointment saved",
				zap.String("appointment_id", appt.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cache.DashboardStatsKey).Err(); err != nil {
		s.logger.Warn("dashboard stats cache invalidation failed", zap.Error(err))
	}
}

func (s *service) GetAll(ctx context.Context) ([]AppointmentResponse, error) {
	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(appointments), nil
}

func (s *service) GetByID(ctx context.Context, id string) (AppointmentResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AppointmentResponse{}, appointmenterrors.ErrAppointmentNotFound
		}
		return AppointmentResponse{}, err
	}
	return mapToResponse(*a), nil
}
