package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages.
// Any other error (malformed JSON, wrong types) yields its own text.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := fieldPath(e)
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", field, param)
		}
		return fmt.Sprintf("%s: must be at most %s", field, param)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", field, param)
		}
		return fmt.Sprintf("%s: must be at least %s", field, param)
	case "email":
		return fmt.Sprintf("%s: must be a valid email address", field)
	case "money":
		return fmt.Sprintf("%s: must be a non-negative amount with at most %d integer and %d decimal digits", field, moneyIntegerDigits, moneyScale)
	default:
		return fmt.Sprintf("%s: failed on the '%s' rule", field, e.Tag())
	}
}

// fieldPath drops the root struct name from the namespace: "experiences[0].company".
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return e.Field()
}
