// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/domain/repository"
	"authgate/internal/domain/service"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var notValidatedFailure = entity.FieldError{Message: "input was not validated"}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup hashes the password and stores a new account with the default status.
func (srv *authService) Signup(ctx context.Context, input usecase.Validated[usecase.SignupInput]) (*usecase.SignupOutput, error) {
	if !input.OK() {
		failures := input.Failures()
		if !input.Checked() {
			failures = []entity.FieldError{notValidatedFailure}
		}

		return nil, domainerrors.NewValidationError(failures)
	}
	in := input.Value()

	hashedPassword, err := srv.hasher.Hash(ctx, in.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	newUser := entity.NewUser(in.Email, in.Name, hashedPassword)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		// Lost the race on the unique email index.
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			srv.log(ctx).Warn("Signup rejected by store", slog.String("email", newUser.Email), slog.Any("error", err))

			return nil, err
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{UserID: newUser.ID}, nil
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	// Signup hashed the trimmed password.
	password := strings.TrimSpace(input.Password)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	if email == "" || password == "" {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "missing credentials"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	// Read through the primary so a login right after signup sees the new account.
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByEmail(ctx, email)

		return findErr
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "user not found"))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}
		srv.log(ctx).Error("Failed to load user for login", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}

	// bcrypt is CPU-bound, so the check runs outside the transaction.
	match, err := srv.hasher.Check(ctx, password, user.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Failed to check password", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}
	if !match {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	issued, err := srv.tokenService.Issue(user.ID, user.Email, srv.tokenService.TTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WithCause(err)
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token:     issued.Token,
		UserID:    user.ID,
		ExpiresAt: issued.ExpiresAt,
	}, nil
}

// Authorize turns every token failure into ErrUnauthorized while keeping the token error kind reachable.
func (srv *authService) Authorize(ctx context.Context, rawToken string) (*entity.AuthContext, error) {
	authCtx, err := srv.tokenService.Validate(rawToken)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthorized.WithCause(err)
	}

	return authCtx, nil
}

// GetStatus returns the status of the authenticated user.
func (srv *authService) GetStatus(ctx context.Context, subjectID uuid.UUID) (string, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		user, findErr = repoFactory.UserRepo().FindByID(ctx, subjectID)

		return findErr
	})
	if err != nil {
		return "", srv.subjectLookupError(ctx, subjectID, err)
	}

	return user.Status, nil
}

// UpdateStatus replaces the status of the authenticated user.
func (srv *authService) UpdateStatus(ctx context.Context, subjectID uuid.UUID, input usecase.Validated[usecase.StatusInput]) error {
	if !input.OK() {
		failures := input.Failures()
		if !input.Checked() {
			failures = []entity.FieldError{notValidatedFailure}
		}

		return domainerrors.NewValidationError(failures)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, subjectID)
		if err != nil {
			return err
		}
		user.Status = input.Value().Status

		return userRepo.Update(ctx, user)
	})
	if err != nil {
		return srv.subjectLookupError(ctx, subjectID, err)
	}
	srv.log(ctx).Debug("User status updated", slog.Any("userID", subjectID))

	return nil
}

// subjectLookupError classifies failures of operations on the token's subject.
// A subject that no longer exists is reported as unauthenticated, not as missing.
func (srv *authService) subjectLookupError(ctx context.Context, subjectID uuid.UUID, err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Token subject not found", slog.Any("userID", subjectID))

		return domainerrors.ErrUnauthorized.WithCause(err)
	}
	srv.log(ctx).Error("Failed to access user", slog.Any("userID", subjectID), slog.Any("error", err))

	return domainerrors.ErrInternalError.WithCause(err)
}
