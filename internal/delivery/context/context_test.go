package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "missing id falls back to a fresh uuid")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAuthContext(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAuthContext(c)
	assert.False(t, ok)

	authCtx := &entity.AuthContext{SubjectID: uuid.New(), SubjectEmail: "test@test.com"}
	SetAuthContext(c, authCtx)

	got, ok := GetAuthContext(c)
	require.True(t, ok)
	assert.Equal(t, authCtx, got)

	fromRequest, ok := AuthContextFrom(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, authCtx, fromRequest)

	_, ok = AuthContextFrom(context.Background())
	assert.False(t, ok)
}
