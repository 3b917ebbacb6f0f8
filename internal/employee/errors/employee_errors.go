package employeeerrors

import (
	"net/http"

	"go-bookingdesk/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee ID not found",
		http.StatusNotFound,
	)
)
