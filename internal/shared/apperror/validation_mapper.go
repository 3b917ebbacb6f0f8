package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns validator output into an AppError. Every field that
// failed the "required" tag is listed in one message so the caller sees the full
// set of gaps in a single round trip.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		var missing []string
		for _, e := range errs {
			if e.Tag() == "required" {
				missing = append(missing, e.Field())
			}
		}
		if len(missing) > 0 {
			return New(
				CodeInvalidInput,
				"Missing required fields: "+strings.Join(missing, ", "),
				http.StatusBadRequest,
			)
		}

		e := errs[0]
		return New(
			CodeInvalidInput,
			formatFieldName(e.Field())+" is invalid",
			http.StatusBadRequest,
		)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
