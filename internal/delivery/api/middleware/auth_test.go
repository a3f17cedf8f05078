package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"authgate/internal/domain/entity"
	domainerrors "authgate/internal/domain/errors"
	mockUsecase "authgate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi", wantOK: true},
		{name: "lower case scheme", header: "bearer abc", want: "abc", wantOK: true},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc", wantOK: true},
		{name: "empty", header: ""},
		{name: "scheme only", header: "Bearer"},
		{name: "scheme and blank", header: "Bearer    "},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz"},
		{name: "token without scheme", header: "abc.def.ghi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := bearerToken(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func runAuthenticate(t *testing.T, authUC *mockUsecase.MockAuthUsecase, header string) (echo.Context, bool, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/user/status", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	called := false
	next := func(echo.Context) error {
		called = true

		return nil
	}

	err := NewAuthMiddleware(authUC).Authenticate(next)(c)

	return c, called, err
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Bearer "} {
		t.Run(header, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)

			c, called, err := runAuthenticate(t, authUC, header)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
			assert.False(t, called)
			_, ok := GetUserID(c)
			assert.False(t, ok)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	subject := &entity.AuthContext{SubjectID: uuid.New(), SubjectEmail: "test@test.com"}
	authUC.EXPECT().Authorize(mock.Anything, "good.token.value").Return(subject, nil).Once()

	c, called, err := runAuthenticate(t, authUC, "Bearer good.token.value")

	require.NoError(t, err)
	assert.True(t, called)

	userID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, subject.SubjectID, userID)

	authCtx, ok := GetAuthContext(c)
	require.True(t, ok)
	assert.Equal(t, "test@test.com", authCtx.SubjectEmail)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Authorize(mock.Anything, "expired").Return(nil, errors.WithStack(domainerrors.ErrUnauthorized)).Once()

	c, called, err := runAuthenticate(t, authUC, "Bearer expired")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	assert.False(t, called)
	_, ok := GetAuthContext(c)
	assert.False(t, ok)
}
