package validator

import (
	"github.com/go-playground/validator/v10"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

var validate = validator.New()

func GetValidator() *validator.Validate {
	return validate
}

// ValidateRequest validates a request struct against its declared shape and
// surfaces field-level violations as a VALIDATION_ERROR with details.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, fieldErr := range validateErrs {
				details[fieldErr.Field()] = fieldErr.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
