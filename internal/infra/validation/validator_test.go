package validation

import (
	"strings"
	"testing"

	domainerrors "authgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email    string `json:"email" validate:"required,email" msg:"Please enter a valid email."`
	Password string `json:"password" validate:"required,min=5,maxbytes=72" redact:"true"`
	Name     string `json:"name" validate:"required"`
}

func TestValidator_Check(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{
			name:  "valid",
			input: signupForm{Email: "test@test.com", Password: "secret1", Name: "Tester"},
		},
		{
			name:       "invalid email",
			input:      signupForm{Email: "not-an-email", Password: "secret1", Name: "Tester"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			input:      &signupForm{Email: "test@test.com", Password: "1234", Name: "Tester"},
			wantFields: []string{"password"},
		},
		{
			name:       "password over 72 bytes",
			input:      signupForm{Email: "test@test.com", Password: strings.Repeat("é", 37), Name: "Tester"},
			wantFields: []string{"password"},
		},
		{
			name:       "everything missing",
			input:      signupForm{},
			wantFields: []string{"email", "password", "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failures := v.Check(tt.input)
			fields := make([]string, 0, len(failures))
			for _, f := range failures {
				fields = append(fields, f.Field)
			}
			if len(tt.wantFields) == 0 {
				assert.Empty(t, failures)

				return
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}

func TestValidator_Messages(t *testing.T) {
	v := New()

	failures := v.Check(signupForm{Email: "bad", Password: "1234", Name: ""})
	require.Len(t, failures, 3)

	assert.Equal(t, "email", failures[0].Field)
	assert.Equal(t, "Please enter a valid email.", failures[0].Message)
	assert.Equal(t, "bad", failures[0].Value)

	assert.Equal(t, "password", failures[1].Field)
	assert.Equal(t, "must be at least 5 characters", failures[1].Message)
	assert.Nil(t, failures[1].Value, "password must never be echoed")

	assert.Equal(t, "name", failures[2].Field)
	assert.Equal(t, "is required", failures[2].Message)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(signupForm{Email: "test@test.com", Password: "secret1", Name: "Tester"}))

	err := v.Validate(signupForm{Email: "test@test.com", Password: "1", Name: "Tester"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Failures, 1)
	assert.Equal(t, "password", validationErr.Failures[0].Field)
}

func TestValidator_NotAStruct(t *testing.T) {
	v := New()

	failures := v.Check(nil)
	assert.Len(t, failures, 1)
}
