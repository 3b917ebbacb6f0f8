package auth

import (
	"context"
	"strings"
	"testing"

	autherrors "go-bookingdesk/internal/auth/errors"
	"go-bookingdesk/internal/domain"
	"go-bookingdesk/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeDirectory struct {
	record *employee.Employee
	calls  int
}

func (f *fakeDirectory) Create(ctx context.Context, e *employee.Employee) error { return nil }
func (f *fakeDirectory) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDirectory) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDirectory) FindByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (*employee.Employee, error) {
	f.calls++
	if f.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if f.record.EmployeeID == employeeID || strings.EqualFold(f.record.Email, email) {
		return f.record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func directoryWith(t *testing.T, password string) *fakeDirectory {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &fakeDirectory{record: &employee.Employee{
		ID:         uuid.New(),
		EmployeeID: "EMP001",
		Email:      "jane@example.com",
		Password:   string(hashed),
		Role:       domain.RoleHR,
	}}
}

func TestService_Login_ByEmployeeID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	directory := directoryWith(t, "s3cret")

	svc := NewService(directory)

	token, resp, err := svc.Login(context.Background(), LoginRequest{
		EmployeeID: "EMP001",
		Password:   "s3cret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "hr", resp.Role)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "EMP001", claims["employee_id"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, directory.record.ID.String(), claims["user_id"])
}

func TestService_Login_ByEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	directory := directoryWith(t, "s3cret")

	svc := NewService(directory)

	token, resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", resp.Email)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	directory := directoryWith(t, "s3cret")

	svc := NewService(directory)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		EmployeeID: "EMP001",
		Password:   "nope",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_UnknownIdentifier(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	directory := &fakeDirectory{}

	svc := NewService(directory)

	_, _, err := svc.Login(context.Background(), LoginRequest{
		EmployeeID: "EMP999",
		Password:   "s3cret",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_NoIdentifier(t *testing.T) {
	directory := &fakeDirectory{}

	svc := NewService(directory)

	_, _, err := svc.Login(context.Background(), LoginRequest{Password: "s3cret"})
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Zero(t, directory.calls)
}
