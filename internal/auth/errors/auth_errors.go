package autherrors

import (
	"net/http"

	"go-bookingdesk/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrTokenRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Token required",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrEmployeeGone = apperror.New(
		apperror.CodeUnauthorized,
		"Employee not found",
		http.StatusUnauthorized,
	)
)
