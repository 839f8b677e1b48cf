// Package validator wraps go-playground/validator with the project's
// structured violation format: every offending field is reported together
// with its received value and the constraint it violated, so a caller never
// sees a partially-applied construction.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// itemCodeRe matches catalog codes: the literal prefix "code-" followed by
// exactly three digits.
var itemCodeRe = regexp.MustCompile(`^code-[0-9]{3}$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]

		// ignore unexported or explicitly ignored
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// item_code: catalog code format, usable as `validate:"omitempty,item_code"`.
	_ = validate.RegisterValidation("item_code", func(fl validator.FieldLevel) bool {
		return itemCodeRe.MatchString(fl.Field().String())
	})
}

// FieldError describes one violated constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Value   any    `json:"value"`
}

// ValidationError aggregates every field violation found in one pass.
// It is a client error: errhttp maps it to 422 with the full violation list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("validation failed on %s", strings.Join(names, ", "))
}

// Has reports whether any violation targets the given field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Invalid builds a single-violation ValidationError, for constraints that
// are checked outside struct tags (query/path parsing, business rules).
func Invalid(field, message, typ string, value any) *ValidationError {
	return &ValidationError{Fields: []FieldError{{
		Field:   field,
		Message: message,
		Type:    typ,
		Value:   value,
	}}}
}

// Semantic builds a single-violation ValidationError of type "value_error",
// used for business rules that run after structural validation passes.
func Semantic(field, message string, value any) *ValidationError {
	return Invalid(field, message, "value_error", value)
}

// Check runs struct-level validation using go-playground/validator tags and
// converts any failure into a *ValidationError. Returns nil when s is valid.
func Check(s any) *ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: caller passed a non-struct. Programmer error.
		panic(fmt.Sprintf("validator: unsupported input: %v", err))
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(ve))}
	for _, e := range ve {
		msg, typ := describe(e)
		out.Fields = append(out.Fields, FieldError{
			Field:   e.Field(),
			Message: msg,
			Type:    typ,
			Value:   e.Value(),
		})
	}
	return out
}

func describe(e validator.FieldError) (message, typ string) {
	switch e.Tag() {
	case "required":
		return "This field is required", "missing"
	case "min":
		return fmt.Sprintf("Minimum length is %s", e.Param()), "too_short"
	case "max":
		return fmt.Sprintf("Maximum length is %s", e.Param()), "too_long"
	case "gt":
		return fmt.Sprintf("Must be greater than %s", e.Param()), "greater_than"
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", e.Param()), "greater_than_equal"
	case "lt":
		return fmt.Sprintf("Must be less than %s", e.Param()), "less_than"
	case "lte":
		return fmt.Sprintf("Must be less than or equal to %s", e.Param()), "less_than_equal"
	case "item_code":
		return `Must match the pattern "code-" followed by three digits`, "string_pattern_mismatch"
	case "email":
		return "Must be a valid email address", "value_error"
	case "url":
		return "Must be a valid URL", "value_error"
	default:
		return fmt.Sprintf("Validation failed on '%s'", e.Tag()), e.Tag()
	}
}
