package validator

import (
	ierr "github.com/cityledger/invoicegateway/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// NewValidator initializes the validator with the gateway's custom rules
func NewValidator() *validator.Validate {
	validate = validator.New()
	_ = validate.RegisterValidation("municipality_id", func(fl validator.FieldLevel) bool {
		return IsMunicipalityID(fl.Field().String())
	})
	_ = validate.RegisterValidation("org_number", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || IsOrganizationNumber(value)
	})
	return validate
}

func GetValidator() *validator.Validate {
	if validate == nil {
		return NewValidator()
	}
	return validate
}

// ValidateRequest validates a struct against its binding tags and returns a
// field level violation list on failure
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
