// internal/service/validate.go
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/go-playground/validator/v10"
)

// invalidInput converts validator failures into the domain's per-field
// ValidationError so handlers can surface messages next to each field.
func invalidInput(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("validating input: %w", err)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", strings.ToLower(fe.Param()))
	default:
		return "invalid value"
	}
}
