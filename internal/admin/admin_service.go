package admin

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-bookingdesk/internal/appointment"
	appointmenterrors "go-bookingdesk/internal/appointment/errors"
	"go-bookingdesk/internal/bootstrap"
	"go-bookingdesk/internal/shared/cache"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultDeclineReason = "No reason provided"

type Service interface {
	Dashboard(ctx context.Context, actorRole, actorEmail string) (DashboardResponse, error)
	// Approve and Decline apply the transition unconditionally: there is no
	// current-status precondition, so a repeat call overwrites the audit stamp
	// with the latest actor and time.
	Approve(ctx context.Context, actorEmployeeID, id string) (appointment.AppointmentResponse, error)
	Decline(ctx context.Context, actorEmployeeID, id, reason string) (appointment.AppointmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   appointment.Repository
	audit  bootstrap.AuditLogger
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(db *sql.DB, repo appointment.Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{db: db, repo: repo, audit: audit, logger: l}
}

// NewServiceWithCache adds a redis client for short-TTL dashboard stats.
func NewServiceWithCache(db *sql.DB, repo appointment.Repository, audit bootstrap.AuditLogger, rdb *redis.Client, logger ...*zap.Logger) Service {
	s := NewService(db, repo, audit, logger...).(*service)
	s.rdb = rdb
	return s
}

func (s *service) Dashboard(ctx context.Context, actorRole, actorEmail string) (DashboardResponse, error) {
	stats, err := s.loadStats(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	appointments, err := s.repo.FindAll(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	resp := DashboardResponse{
		Role:         actorRole,
		EmployeeName: actorEmail,
		Stats:        stats,
		Today:        time.Now().UTC().Format("2006-01-02"),
	}
	resp.Appointments = make([]appointment.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, appointment.ToResponse(a))
	}
	return resp, nil
}

// loadStats serves counts from a short-lived cache; a cache fault falls through
// to the store.
func (s *service) loadStats(ctx context.Context) (DashboardStats, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cache.DashboardStatsKey).Result(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	var stats DashboardStats
	var err error
	if stats.Pending, err = s.repo.CountByStatus(ctx, appointment.StatusPending); err != nil {
		return DashboardStats{}, err
	}
	if stats.Approved, err = s.repo.CountByStatus(ctx, appointment.StatusApproved); err != nil {
		return DashboardStats{}, err
	}
	if stats.Declined, err = s.repo.CountByStatus(ctx, appointment.StatusDeclined); err != nil {
		return DashboardStats{}, err
	}
	if stats.Total, err = s.repo.CountAll(ctx); err != nil {
		return DashboardStats{}, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, cache.DashboardStatsKey, raw, cache.DashboardStatsTTL).Err(); err != nil {
				s.logger.Warn("dashboard stats cache write failed", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *service) Approve(ctx context.Context, actorEmployeeID, id string) (appointment.AppointmentResponse, error) {
	return s.transition(ctx, actorEmployeeID, id, appointment.StatusApproved, "")
}

func (s *service) Decline(ctx context.Context, actorEmployeeID, id, reason string) (appointment.AppointmentResponse, error) {
	if reason == "" {
		reason = defaultDeclineReason
	}
	return s.transition(ctx, actorEmployeeID, id, appointment.StatusDeclined, reason)
}

func (s *service) transition(ctx context.Context, actorEmployeeID, id, targetStatus, reason string) (appointment.AppointmentResponse, error) {
	s.logger.Debug("transition appointment requested",
		zap.String("appointment_id", id),
		zap.String("actor_employee_id", actorEmployeeID),
		zap.String("target_status", targetStatus),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition begin tx failed", zap.Error(err))
		return appointment.AppointmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appointment.AppointmentResponse{}, appointmenterrors.ErrAppointmentNotFound
		}
		s.logger.Error("transition lookup failed", zap.Error(err))
		return appointment.AppointmentResponse{}, err
	}

	now := time.Now().UTC()
	a.Status = targetStatus
	switch targetStatus {
	case appointment.StatusApproved:
		a.ApprovedBy = &actorEmployeeID
		a.ApprovedAt = &now
	case appointment.StatusDeclined:
		a.DeclinedBy = &actorEmployeeID
		a.DeclineReason = &reason
		a.DeclinedAt = &now
	}
	a.UpdatedAt = now

	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Error("transition persist failed",
			zap.String("appointment_id", id),
			zap.Error(err),
		)
		return appointment.AppointmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("transition commit failed", zap.Error(err))
		return appointment.AppointmentResponse{}, err
	}

	s.invalidateStats(ctx)

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "APPOINTMENT_" + strings.ToUpper(targetStatus),
		Message: "Appointment status changed by admin",
		Meta: map[string]any{
			"appointment_id": id,
			"actor":          actorEmployeeID,
			"status":         targetStatus,
		},
	})

	s.logger.Info("transition appointment success",
		zap.String("appointment_id", id),
		zap.String("status", targetStatus),
	)

	return appointment.ToResponse(*a), nil
}

func (s *service) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cache.DashboardStatsKey).Err(); err != nil {
		s.logger.Warn("dashboard stats cache invalidation failed", zap.Error(err))
	}
}
