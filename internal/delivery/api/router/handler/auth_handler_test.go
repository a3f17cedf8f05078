package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "authgate/internal/delivery/context"
	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"
	"authgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase, *mockUsecase.MockInputValidator) {
	t.Helper()

	authUC := mockUsecase.NewMockAuthUsecase(t)
	validator := mockUsecase.NewMockInputValidator(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC:    authUC,
		Validator: validator,
	}), authUC, validator
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h, authUC, validator := createTestAuthHandler(t)
	userID := uuid.New()
	validated := usecase.Validated[usecase.SignupInput]{}

	validator.EXPECT().
		ValidateSignup(mock.Anything, usecase.SignupInput{Email: "test@test.com", Password: "tester", Name: "Tester"}).
		Return(validated, nil).Once()
	authUC.EXPECT().Signup(mock.Anything, validated).Return(&usecase.SignupOutput{UserID: userID}, nil).Once()

	c, rec := newJSONContext(http.MethodPut, "/auth/signup", `{"email":"test@test.com","password":"tester","name":"Tester"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"User created"`)
	assert.Contains(t, rec.Body.String(), `"userId":"`+userID.String()+`"`)
}

func TestAuthHandler_Signup_Errors(t *testing.T) {
	t.Run("store unavailable during validation", func(t *testing.T) {
		h, _, validator := createTestAuthHandler(t)
		storeErr := domainerrors.ErrInternalError.WithCause(errors.New("db down"))
		validator.EXPECT().ValidateSignup(mock.Anything, mock.Anything).
			Return(usecase.Validated[usecase.SignupInput]{}, storeErr).Once()

		c, _ := newJSONContext(http.MethodPut, "/auth/signup", `{"email":"test@test.com"}`)
		err := h.Signup(c)

		assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
	})

	t.Run("validation failure from usecase", func(t *testing.T) {
		h, authUC, validator := createTestAuthHandler(t)
		validator.EXPECT().ValidateSignup(mock.Anything, mock.Anything).
			Return(usecase.Validated[usecase.SignupInput]{}, nil).Once()
		authUC.EXPECT().Signup(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewValidationError([]entity.FieldError{{Field: "email", Message: entity.MsgInvalidEmail}})).Once()

		c, _ := newJSONContext(http.MethodPut, "/auth/signup", `{"email":"nope"}`)
		err := h.Signup(c)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _, _ := createTestAuthHandler(t)

		c, rec := newJSONContext(http.MethodPut, "/auth/signup", `{"email":`)
		require.NoError(t, h.Signup(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h, authUC, _ := createTestAuthHandler(t)
	userID := uuid.New()
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	authUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "test@test.com", Password: "tester"}).
		Return(&usecase.LoginOutput{Token: "a.b.c", UserID: userID, ExpiresAt: expiresAt}, nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"test@test.com","password":"tester"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"a.b.c"`)
	assert.Contains(t, rec.Body.String(), `"expiresAt":"2030-01-01T00:00:00Z"`)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC, _ := createTestAuthHandler(t)
	authUC.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials)).Once()

	c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"test@test.com","password":"wrong"}`)

	assert.True(t, errors.Is(h.Login(c), domainerrors.ErrInvalidCredentials))
}

func TestAuthHandler_StatusRequiresAuthContext(t *testing.T) {
	h, _, _ := createTestAuthHandler(t)

	c, _ := newJSONContext(http.MethodGet, "/auth/user/status", "")
	assert.True(t, errors.Is(h.GetStatus(c), domainerrors.ErrUnauthorized))

	c, _ = newJSONContext(http.MethodPut, "/auth/user/status", `{"status":"x"}`)
	assert.True(t, errors.Is(h.UpdateStatus(c), domainerrors.ErrUnauthorized))
}

func TestAuthHandler_Status(t *testing.T) {
	h, authUC, validator := createTestAuthHandler(t)
	subject := &entity.AuthContext{SubjectID: uuid.New(), SubjectEmail: "test@test.com"}
	validated := usecase.Validated[usecase.StatusInput]{}

	authUC.EXPECT().GetStatus(mock.Anything, subject.SubjectID).Return("I am new!", nil).Once()
	validator.EXPECT().ValidateStatus(mock.Anything, usecase.StatusInput{Status: "Busy"}).Return(validated).Once()
	authUC.EXPECT().UpdateStatus(mock.Anything, subject.SubjectID, validated).Return(nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/auth/user/status", "")
	deliverycontext.SetAuthContext(c, subject)
	require.NoError(t, h.GetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"I am new!"`)
	assert.Contains(t, rec.Body.String(), `"message":"Success!"`)

	c, rec = newJSONContext(http.MethodPut, "/auth/user/status", `{"status":"Busy"}`)
	deliverycontext.SetAuthContext(c, subject)
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Successfully updated user status."`)
}
