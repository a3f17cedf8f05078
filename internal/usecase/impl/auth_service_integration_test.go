package impl

import (
	"context"
	"testing"
	"time"

	"authgate/config"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/infra/auth"
	"authgate/internal/infra/persistence/postgres"
	"authgate/internal/infra/validation"
	"authgate/internal/testutil"
	"authgate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authStack struct {
	service   usecase.AuthUsecase
	validator usecase.InputValidator
	users     interface {
		FindByEmail(ctx context.Context, email string) (*entity.User, error)
	}
}

func newAuthStack(t *testing.T) authStack {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	userRepo := postgres.NewUserRepository(db)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "integration-secret", TTL: time.Hour}}
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return authStack{
		service: NewAuthService(AuthServiceParams{
			TxManager:    postgres.NewTransactionManager(db),
			Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost, 0),
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		validator: usecase.NewInputValidator(usecase.InputValidatorParams{
			Checker:  validation.New(),
			UserRepo: userRepo,
			Config:   cfg,
		}),
		users: userRepo,
	}
}

func (s authStack) signup(t *testing.T, email, password, name string) (*usecase.SignupOutput, error) {
	t.Helper()

	input, err := s.validator.ValidateSignup(context.Background(), usecase.SignupInput{Email: email, Password: password, Name: name})
	require.NoError(t, err)

	return s.service.Signup(context.Background(), input)
}

func TestAuthFlow_SignupLoginAuthorize(t *testing.T) {
	stack := newAuthStack(t)
	ctx := context.Background()

	created, err := stack.signup(t, "test@test.com", "secret1", "Tester")
	require.NoError(t, err)

	stored, err := stack.users.FindByEmail(ctx, "test@test.com")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, stored.ID)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Equal(t, entity.DefaultStatus, stored.Status)

	login, err := stack.service.Login(ctx, usecase.LoginInput{Email: "Test@Test.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, login.UserID)
	assert.NotEmpty(t, login.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), login.ExpiresAt, 5*time.Second)

	authCtx, err := stack.service.Authorize(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, authCtx.SubjectID)
	assert.Equal(t, "test@test.com", authCtx.SubjectEmail)

	_, err = stack.service.Login(ctx, usecase.LoginInput{Email: "test@test.com", Password: "secret2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = stack.service.Login(ctx, usecase.LoginInput{Email: "other@test.com", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = stack.service.Authorize(ctx, login.Token+"x")
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthFlow_Status(t *testing.T) {
	stack := newAuthStack(t)
	ctx := context.Background()

	created, err := stack.signup(t, "test@test.com", "secret1", "Tester")
	require.NoError(t, err)

	status, err := stack.service.GetStatus(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStatus, status)

	require.NoError(t, stack.service.UpdateStatus(ctx, created.UserID, stack.validator.ValidateStatus(ctx, usecase.StatusInput{Status: "Busy"})))

	status, err = stack.service.GetStatus(ctx, created.UserID)
	require.NoError(t, err)
	assert.Equal(t, "Busy", status)
}

func TestAuthFlow_DuplicateSignup(t *testing.T) {
	stack := newAuthStack(t)

	_, err := stack.signup(t, "test@test.com", "secret1", "Tester")
	require.NoError(t, err)

	_, err = stack.signup(t, "TEST@test.com", "secret2", "Copy")
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	require.Len(t, validationErr.Failures, 1)
	assert.Equal(t, "email", validationErr.Failures[0].Field)
	assert.Equal(t, entity.MsgEmailTaken, validationErr.Failures[0].Message)
}

func TestAuthFlow_DuplicateSignupRace(t *testing.T) {
	stack := newAuthStack(t)
	ctx := context.Background()

	// Both requests pass validation before either is stored.
	first, err := stack.validator.ValidateSignup(ctx, usecase.SignupInput{Email: "test@test.com", Password: "secret1", Name: "A"})
	require.NoError(t, err)
	second, err := stack.validator.ValidateSignup(ctx, usecase.SignupInput{Email: "test@test.com", Password: "secret2", Name: "B"})
	require.NoError(t, err)
	require.True(t, first.OK())
	require.True(t, second.OK())

	_, err = stack.service.Signup(ctx, first)
	require.NoError(t, err)

	_, err = stack.service.Signup(ctx, second)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), "got %v", err)
	assert.False(t, errors.Is(err, domainerrors.ErrInternalError))
}

// Signup trims the password before hashing, so login trims it as well.
func TestAuthFlow_PasswordWhitespaceIsTrimmed(t *testing.T) {
	stack := newAuthStack(t)
	ctx := context.Background()

	_, err := stack.signup(t, "spaces@test.com", "  secret1  ", "Spacer")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "exact", password: "secret1"},
		{name: "trailing space", password: "secret1 "},
		{name: "as typed at signup", password: "  secret1  "},
		{name: "inner space differs", password: "secret 1", wantErr: domainerrors.ErrInvalidCredentials},
		{name: "spaces only", password: "   ", wantErr: domainerrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := stack.service.Login(ctx, usecase.LoginInput{Email: "spaces@test.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.Nil(t, output)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, output.Token)
		})
	}
}
