// Package validation adapts go-playground/validator to the domain's structured field errors.
package validation

import (
	"reflect"
	"strconv"
	"strings"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Struct tags understood on top of `validate`:
//
//	msg:"..."       replaces the generated message for every failure of the field
//	redact:"true"   never copies the submitted value into the FieldError
const (
	tagMessage = "msg"
	tagRedact  = "redact"
)

// Validator validates request and usecase input structs. It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their json names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	// bcrypt only reads the first 72 bytes; `max` counts runes, so byte length needs its own rule.
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		return len(fl.Field().String()) <= limit
	})

	return &Validator{validate: validate}
}

// Validate implements echo.Validator. Failures come back as *domainerrors.ValidationError.
func (v *Validator) Validate(i any) error {
	if failures := v.Check(i); len(failures) > 0 {
		return domainerrors.NewValidationError(failures)
	}

	return nil
}

// Check returns every field failure of i, or nil when i is valid.
func (v *Validator) Check(i any) []entity.FieldError {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []entity.FieldError{{Field: "", Message: err.Error()}}
	}

	structType := indirectType(reflect.TypeOf(i))
	failures := make([]entity.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		failures = append(failures, toFieldError(structType, e))
	}

	return failures
}

func toFieldError(structType reflect.Type, e validator.FieldError) entity.FieldError {
	failure := entity.FieldError{
		Field:   e.Field(),
		Message: formatValidationError(e),
		Value:   e.Value(),
	}

	if structType == nil || structType.Kind() != reflect.Struct {
		return failure
	}

	field, ok := structType.FieldByName(e.StructField())
	if !ok {
		return failure
	}
	if msg := field.Tag.Get(tagMessage); msg != "" {
		failure.Message = msg
	}
	if field.Tag.Get(tagRedact) == "true" {
		failure.Value = nil
	}

	return failure
}

// formatValidationError creates a human-readable error message.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "maxbytes":
		return "must be at most " + e.Param() + " bytes"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
