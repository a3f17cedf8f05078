package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"authgate/internal/domain/repository"
	"authgate/internal/infra/validation"
	mockRepo "authgate/internal/mocks/repository"
	"authgate/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// validSignup runs input through the real validator against an empty store.
func validSignup(t *testing.T, input usecase.SignupInput) usecase.Validated[usecase.SignupInput] {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound).Maybe()

	v := usecase.NewInputValidator(usecase.InputValidatorParams{Checker: validation.New(), UserRepo: userRepo})
	result, err := v.ValidateSignup(context.Background(), input)
	require.NoError(t, err)

	return result
}

func validStatus(t *testing.T, status string) usecase.Validated[usecase.StatusInput] {
	t.Helper()

	v := usecase.NewInputValidator(usecase.InputValidatorParams{Checker: validation.New()})

	return v.ValidateStatus(context.Background(), usecase.StatusInput{Status: status})
}

// expectTx makes the transaction manager run fn against a factory that hands out userRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, userRepo repository.UserRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().UserRepo().Return(userRepo)

			return fn(factory)
		}).
		Once()
}
