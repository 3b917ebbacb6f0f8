package apperror

import "net/http"

// Fallback errors for failures no module-specific error covers. The booking
// and admin modules define their own values under internal/<module>/errors.
var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Access denied",
		http.StatusForbidden,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)
)
