package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared and safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations against the JSON property names the API exposes.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldViolation describes one failed constraint on one entity field.
type FieldViolation struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

// Violations is the error returned when an entity fails validation.
type Violations []FieldViolation

func (v Violations) Error() string {
	fields := make([]string, len(v))
	for i, violation := range v {
		fields[i] = violation.Field
	}
	return "validation failed for: " + strings.Join(fields, ", ")
}

// Struct validates an entity against its declared constraints. It returns
// nil on success or a Violations error listing every failed field.
func Struct(entity any) error {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validating entity: %w", err)
	}

	violations := make(Violations, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return violations
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed constraint %q", fe.Tag())
	}
}
