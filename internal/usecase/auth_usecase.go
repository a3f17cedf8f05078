// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email,max=255" msg:"Please enter a valid email."`
	Password string `json:"password" validate:"required,maxbytes=72" redact:"true"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginInput defines the data required for a user to log in. It is deliberately not
// validated: any malformed value simply fails as invalid credentials.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// StatusInput carries the new free-form status of the authenticated user.
type StatusInput struct {
	Status string `json:"status" validate:"required,max=255"`
}

// --- Output DTOs ---

// SignupOutput returns the identifier of the new account.
type SignupOutput struct {
	UserID uuid.UUID
}

// LoginOutput returns the signed token after a successful login.
type LoginOutput struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// AuthUsecase is the credential gate: account creation, login and request authorization.
type AuthUsecase interface {
	// Signup creates an account from input that went through InputValidator.
	Signup(ctx context.Context, input Validated[SignupInput]) (*SignupOutput, error)

	// Login checks the credentials and issues a token. Every failure that is the caller's fault
	// is ErrInvalidCredentials, whether the email is unknown or the password wrong.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Authorize validates a bearer token and returns the identity it proves.
	Authorize(ctx context.Context, rawToken string) (*entity.AuthContext, error)

	GetStatus(ctx context.Context, subjectID uuid.UUID) (string, error)
	UpdateStatus(ctx context.Context, subjectID uuid.UUID, input Validated[StatusInput]) error
}
