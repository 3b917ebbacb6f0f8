package appointmenterrors

import (
	"net/http"

	"go-bookingdesk/internal/shared/apperror"
)

var (
	// ErrInvalidEmployeeID and ErrEmailMismatch are request-time gates: the
	// submission is refused outright and nothing is persisted.
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeRejected,
		"Employee ID not found in our records",
		http.StatusBadRequest,
	)
	ErrEmailMismatch = apperror.New(
		apperror.CodeRejected,
		"Email does not match the Employee ID on record",
		http.StatusBadRequest,
	)
	ErrAppointmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Appointment not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid appointmentDate, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
