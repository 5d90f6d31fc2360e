package helper

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance (shared, safe for concurrent use)
var Validate = validator.New()

// FieldErrors maps struct field names to readable messages.
func FieldErrors(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		name := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required":
			out[name] = name + " is required"
		case "email":
			out[name] = "invalid email format"
		case "min":
			out[name] = name + " must be at least " + fieldErr.Param() + " characters"
		case "max":
			out[name] = name + " must be at most " + fieldErr.Param() + " characters"
		case "oneof":
			out[name] = name + " must be one of: " + fieldErr.Param()
		case "uuid", "uuid4":
			out[name] = name + " must be a valid UUID"
		default:
			out[name] = name + " is invalid"
		}
	}
	return out
}

// ValidateStruct runs tag validation and folds field errors into a single ErrValidation.
func ValidateStruct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	fields := FieldErrors(err)
	if len(fields) == 0 {
		return ErrValidation("Invalid input")
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}
	return ErrValidation(strings.Join(msgs, "; "))
}

// ParseBody decodes the JSON body; malformed input is a validation error.
func ParseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return ErrValidation("Invalid request body")
	}
	return nil
}
