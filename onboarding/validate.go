package onboarding

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var stepValidator = validator.New()

// AlertError is a rejected transition. The message is what the caller shows
// in its alert banner; the state is left unchanged.
type AlertError struct {
	Message string
}

func (e *AlertError) Error() string {
	return e.Message
}

// validateStep runs the tag set of one step payload and folds the failures
// into a single alert message.
func validateStep(payload interface{}) error {
	if err := stepValidator.Struct(payload); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return &AlertError{Message: strings.Join(msgs, "; ")}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
