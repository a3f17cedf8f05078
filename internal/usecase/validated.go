package usecase

import "authgate/internal/domain/entity"

// Validated wraps input that has been through the InputValidator. Its fields are unexported,
// so only this package can produce a checked value; the zero value reports as unchecked.
type Validated[T any] struct {
	value    T
	failures []entity.FieldError
	checked  bool
}

func validated[T any](value T, failures []entity.FieldError) Validated[T] {
	return Validated[T]{value: value, failures: failures, checked: true}
}

// Value returns the normalized input.
func (v Validated[T]) Value() T {
	return v.value
}

// Checked reports whether the value came out of the validator at all.
func (v Validated[T]) Checked() bool {
	return v.checked
}

// Failures returns the field failures found by the validator.
func (v Validated[T]) Failures() []entity.FieldError {
	return v.failures
}

// OK reports whether the input was checked and passed every rule.
func (v Validated[T]) OK() bool {
	return v.checked && len(v.failures) == 0
}
