package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the flattened form handlers feed into the response helper.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP maps any error to a client-safe HTTPError. Non-AppError values become a
// generic 500; internal detail stays server-side in the caller's log line.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}
