package admin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-bookingdesk/internal/appointment"
	appointmenterrors "go-bookingdesk/internal/appointment/errors"
	"go-bookingdesk/internal/bootstrap"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn        func(tx *sql.Tx) appointment.Repository
	createFn        func(ctx context.Context, a *appointment.Appointment) error
	findAllFn       func(ctx context.Context) ([]appointment.Appointment, error)
	findByIDFn      func(ctx context.Context, id string) (*appointment.Appointment, error)
	updateFn        func(ctx context.Context, a *appointment.Appointment) error
	countByStatusFn func(ctx context.Context, status string) (int64, error)
	countAllFn      func(ctx context.Context) (int64, error)
}

func (f *fakeRepo) WithTx(tx *sql.Tx) appointment.Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, a *appointment.Appointment) error {
	return f.createFn(ctx, a)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]appointment.Appointment, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*appointment.Appointment, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) Update(ctx context.Context, a *appointment.Appointment) error {
	return f.updateFn(ctx, a)
}
func (f *fakeRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.countByStatusFn(ctx, status)
}
func (f *fakeRepo) CountAll(ctx context.Context) (int64, error) { return f.countAllFn(ctx) }

type fakeAudit struct {
	entries []bootstrap.AuditLog
}

func (f *fakeAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	f.entries = append(f.entries, entry)
}

func pendingAppointment() appointment.Appointment {
	return appointment.Appointment{
		ID:              uuid.New(),
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "10:00",
		Name:            "Jane Visitor",
		Email:           "jane@example.com",
		Phone1:          "0771234567",
		NumberOfPeople:  1,
		Status:          appointment.StatusPending,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}
}

func TestService_Approve_StampsAudit(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	stored := pendingAppointment()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) appointment.Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*appointment.Appointment, error) {
		copy := stored
		return &copy, nil
	}
	repo.updateFn = func(ctx context.Context, a *appointment.Appointment) error {
		stored = *a
		return nil
	}
	audit := &fakeAudit{}

	svc := NewService(db, repo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Approve(ctx, "EMP001", stored.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, appointment.StatusApproved, resp.Status)
	assert.Equal(t, appointment.StatusApproved, stored.Status)
	if assert.NotNil(t, stored.ApprovedBy) {
		assert.Equal(t, "EMP001", *stored.ApprovedBy)
	}
	assert.NotNil(t, stored.ApprovedAt)
	assert.Nil(t, stored.DeclinedBy)

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "APPOINTMENT_APPROVED", audit.entries[0].Action)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Approve_RepeatOverwritesStamp(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	stored := pendingAppointment()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) appointment.Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*appointment.Appointment, error) {
		copy := stored
		return &copy, nil
	}
	repo.updateFn = func(ctx context.Context, a *appointment.Appointment) error {
		stored = *a
		return nil
	}

	svc := NewService(db, repo, &fakeAudit{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Approve(ctx, "EMP001", stored.ID.String())
	assert.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = svc.Approve(ctx, "EMP002", stored.ID.String())
	assert.NoError(t, err)

	if assert.NotNil(t, stored.ApprovedBy) {
		assert.Equal(t, "EMP002", *stored.ApprovedBy)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Decline_DefaultReason(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	stored := pendingAppointment()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) appointment.Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*appointment.Appointment, error) {
		copy := stored
		return &copy, nil
	}
	repo.updateFn = func(ctx context.Context, a *appointment.Appointment) error {
		stored = *a
		return nil
	}
	audit := &fakeAudit{}

	svc := NewService(db, repo, audit)

	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Decline(ctx, "EMP001", stored.ID.String(), "")
	assert.NoError(t, err)
	assert.Equal(t, appointment.StatusDeclined, resp.Status)
	if assert.NotNil(t, stored.DeclineReason) {
		assert.Equal(t, "No reason provided", *stored.DeclineReason)
	}
	if assert.NotNil(t, stored.DeclinedBy) {
		assert.Equal(t, "EMP001", *stored.DeclinedBy)
	}
	assert.NotNil(t, stored.DeclinedAt)

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, "APPOINTMENT_DECLINED", audit.entries[0].Action)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Decline_KeepsGivenReason(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	stored := pendingAppointment()
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) appointment.Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*appointment.Appointment, error) {
		copy := stored
		return &copy, nil
	}
	repo.updateFn = func(ctx context.Context, a *appointment.Appointment) error {
		stored = *a
		return nil
	}

	svc := NewService(db, repo, &fakeAudit{})

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.Decline(ctx, "EMP001", stored.ID.String(), "Fully booked that day")
	assert.NoError(t, err)
	if assert.NotNil(t, stored.DeclineReason) {
		assert.Equal(t, "Fully booked that day", *stored.DeclineReason)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Transition_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) appointment.Repository { return repo }
	repo.findByIDFn = func(ctx context.Context, id string) (*appointment.Appointment, error) {
		return nil, gorm.ErrRecordNotFound
	}
	audit := &fakeAudit{}

	svc := NewService(db, repo, audit)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.Approve(ctx, "EMP001", uuid.New().String())
	assert.ErrorIs(t, err, appointmenterrors.ErrAppointmentNotFound)
	assert.Empty(t, audit.entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Dashboard_AggregatesStats(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()
	ctx := context.Background()

	counts := map[string]int64{
		appointment.StatusPending:  2,
		appointment.StatusApproved: 5,
		appointment.StatusDeclined: 1,
	}
	repo := &fakeRepo{
		countByStatusFn: func(ctx context.Context, status string) (int64, error) {
			return counts[status], nil
		},
		countAllFn: func(ctx context.Context) (int64, error) { return 8, nil },
		findAllFn: func(ctx context.Context) ([]appointment.Appointment, error) {
			return []appointment.Appointment{pendingAppointment()}, nil
		},
	}

	svc := NewService(db, repo, &fakeAudit{})

	resp, err := svc.Dashboard(ctx, "hr", "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "hr", resp.Role)
	assert.Equal(t, "admin@example.com", resp.EmployeeName)
	assert.Equal(t, DashboardStats{Pending: 2, Approved: 5, Declined: 1, Total: 8}, resp.Stats)
	assert.Len(t, resp.Appointments, 1)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.Today)
}
