package validate

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is the message of responses for payloads failing validation.
var ErrValidation = errors.New("validation failed")

// FieldErrors are validation failures detected outside of the validator,
// keyed by field name.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return ErrValidation.Error()
}

// Errors returns a message per invalid field if err is a validation
// failure. ok is false for all other errors.
func Errors(err error) (fields map[string]string, ok bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil, false
	}

	fields = make(map[string]string, len(errs))
	for _, e := range errs {
		if _, exists := fields[e.Field()]; exists {
			continue
		}
		fields[e.Field()] = Message(e)
	}

	return fields, true
}

// Message returns a human readable explanation of a validation failure.
func Message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("%s cannot have more than %s entries", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s cannot be longer than %s characters", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "mailformat":
		return "invalid email format"
	case "password":
		return fmt.Sprintf("password must be at least 8 characters long, at most %d bytes long and contain an upper-case letter, a lower-case letter and a digit", MaxPasswordBytes)
	case "hexcolor6":
		return "color must be a valid hex color code (e.g. #FF5733)"
	case "money":
		return fmt.Sprintf("%s must be between 0.01 and %s with at most two decimal places", e.Field(), MaxAmount)
	case "excludesall":
		return fmt.Sprintf("%s must not contain commas", e.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	}

	return fmt.Sprintf("%s is not valid", e.Field())
}
