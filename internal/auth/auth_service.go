package auth

import (
	"context"
	"os"
	"time"

	autherrors "go-bookingdesk/internal/auth/errors"
	"go-bookingdesk/internal/employee"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the stateless session window; the cookie carries the same value.
const TokenTTL = 8 * time.Hour

type Service interface {
	Login(ctx context.Context, req LoginRequest) (token string, resp AuthResponse, err error)
}

type service struct {
	directory employee.Repository
	logger    *zap.Logger
}

func NewService(directory employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{directory: directory, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	if req.EmployeeID == "" && req.Email == "" {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	e, err := s.directory.FindByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		// Same response for unknown identifier and bad password.
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(req.Password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(e)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("employee_id", e.EmployeeID))

	return token, AuthResponse{
		ID:         e.ID.String(),
		EmployeeID: e.EmployeeID,
		Email:      e.Email,
		Role:       e.Role.String(),
	}, nil
}

func (s *service) generateToken(e *employee.Employee) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     e.ID.String(),
		"employee_id": e.EmployeeID,
		"email":       e.Email,
		"role":        e.Role.String(),
		"exp":         time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
