// Package validation wraps go-playground/validator with the field-level
// messages this application shows to end users: one message per invalid
// field, phrased for the form the field came from.
package validation

import (
	"strings"
	"sync"

	domainerrors "potluck/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

// Struct validates s against its struct tags. On failure it returns
// domainerrors.ErrValidationFailed with one human-readable message per
// invalid field in the details.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

// fieldMessage renders a single validation failure the way the forms word it.
func fieldMessage(fe validator.FieldError) string {
	field := humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required!"
	case "email":
		return field + " must be a valid email address!"
	case "min":
		return field + " must be at least " + fe.Param() + " characters!"
	case "max":
		return field + " must be at most " + fe.Param() + " characters!"
	case "eqfield":
		return field + " must match " + humanize(fe.Param()) + "!"
	default:
		return field + " is invalid!"
	}
}

// humanize splits a CamelCase struct field name into words
// ("FirstName" -> "First name").
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')

			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
