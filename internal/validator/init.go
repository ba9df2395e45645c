package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return validate.Struct(s)
}

// Reason turns a validation error into a short "field:tag" list for clients.
func Reason(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+":"+fe.Tag())
	}
	return strings.Join(parts, ",")
}
