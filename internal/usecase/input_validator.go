package usecase

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"authgate/config"
	"authgate/internal/domain/entity"
	"authgate/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 5

// StructChecker reports the rule failures of a tagged struct.
type StructChecker interface {
	Check(i any) []entity.FieldError
}

// InputValidator is the only producer of Validated values.
type InputValidator interface {
	// ValidateSignup normalizes the input and checks format, length and email availability.
	// The error is reserved for store failures; rule failures travel inside the result.
	ValidateSignup(ctx context.Context, input SignupInput) (Validated[SignupInput], error)

	ValidateStatus(ctx context.Context, input StatusInput) Validated[StatusInput]
}

// InputValidatorParams holds dependencies for the input validator, injected by Fx.
type InputValidatorParams struct {
	fx.In

	Checker  StructChecker
	UserRepo repository.UserRepository
	Config   *config.Config
}

type inputValidator struct {
	checker           StructChecker
	userRepo          repository.UserRepository
	minPasswordLength int
}

// NewInputValidator is the constructor for inputValidator.
func NewInputValidator(params InputValidatorParams) InputValidator {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &inputValidator{
		checker:           params.Checker,
		userRepo:          params.UserRepo,
		minPasswordLength: minLength,
	}
}

var signupFieldOrder = []string{"email", "password", "name"}

func (v *inputValidator) ValidateSignup(ctx context.Context, input SignupInput) (Validated[SignupInput], error) {
	input.Email = entity.NormalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	input.Name = strings.TrimSpace(input.Name)

	failures := v.checker.Check(input)

	if !hasFailure(failures, "password") && utf8.RuneCountInString(input.Password) < v.minPasswordLength {
		failures = append(failures, entity.FieldError{
			Field:   "password",
			Message: "must be at least " + strconv.Itoa(v.minPasswordLength) + " characters",
		})
	}

	if !hasFailure(failures, "email") {
		_, err := v.userRepo.FindByEmail(ctx, input.Email)
		switch {
		case err == nil:
			failures = append(failures, entity.FieldError{
				Field:   "email",
				Message: entity.MsgEmailTaken,
				Value:   input.Email,
			})
		case !errors.Is(err, repository.ErrUserNotFound):
			return Validated[SignupInput]{}, errors.Wrap(err, "check email availability")
		}
	}

	slices.SortStableFunc(failures, func(a, b entity.FieldError) int {
		return slices.Index(signupFieldOrder, a.Field) - slices.Index(signupFieldOrder, b.Field)
	})

	return validated(input, failures), nil
}

func (v *inputValidator) ValidateStatus(_ context.Context, input StatusInput) Validated[StatusInput] {
	input.Status = strings.TrimSpace(input.Status)

	return validated(input, v.checker.Check(input))
}

func hasFailure(failures []entity.FieldError, field string) bool {
	return slices.ContainsFunc(failures, func(f entity.FieldError) bool {
		return f.Field == field
	})
}
