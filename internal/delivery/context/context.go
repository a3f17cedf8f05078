// Package context carries request-scoped values between the transport and the inner layers.
package context

import (
	"context"
	"log/slog"

	"authgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyAuthContext is the key for the identity proven by the request's bearer token.
	KeyAuthContext ContextKey = "auth_context"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetAuthContext binds the authenticated identity to both the echo.Context and the request context.
func SetAuthContext(c echo.Context, authCtx *entity.AuthContext) {
	c.Set(string(KeyAuthContext), authCtx)
	c.SetRequest(c.Request().WithContext(WithAuthContext(c.Request().Context(), authCtx)))
}

// GetAuthContext returns the identity bound by the auth middleware.
func GetAuthContext(c echo.Context) (*entity.AuthContext, bool) {
	authCtx, ok := c.Get(string(KeyAuthContext)).(*entity.AuthContext)

	return authCtx, ok && authCtx != nil
}

// WithAuthContext returns a new context carrying the authenticated identity.
func WithAuthContext(ctx context.Context, authCtx *entity.AuthContext) context.Context {
	return context.WithValue(ctx, KeyAuthContext, authCtx)
}

// AuthContextFrom returns the authenticated identity stored in ctx, if any.
func AuthContextFrom(ctx context.Context) (*entity.AuthContext, bool) {
	authCtx, ok := ctx.Value(KeyAuthContext).(*entity.AuthContext)

	return authCtx, ok && authCtx != nil
}
