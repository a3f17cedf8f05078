package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantEcho bool
	}{
		{name: "client id kept", header: "req-123", wantEcho: true},
		{name: "missing id generated", header: ""},
		{name: "id with spaces replaced", header: "bad id"},
		{name: "id with newline replaced", header: "bad\nid"},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			handler := NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantEcho {
				assert.Equal(t, tt.header, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func runLogged(t *testing.T, debug bool, handler echo.HandlerFunc) []map[string]any {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login?password=leak", nil), httptest.NewRecorder())

	require.NoError(t, NewLoggerMiddleware(logger, cfg).Handle(handler)(c))

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}

	return entries
}

func TestLoggerMiddleware(t *testing.T) {
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	unauthorized := func(echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized, "nope") }

	t.Run("success is silent outside debug", func(t *testing.T) {
		assert.Empty(t, runLogged(t, false, ok))
	})

	t.Run("success is logged in debug", func(t *testing.T) {
		entries := runLogged(t, true, ok)
		require.Len(t, entries, 1)
		assert.Equal(t, "INFO", entries[0]["level"])
		assert.Equal(t, float64(http.StatusOK), entries[0]["status"])
	})

	t.Run("failure is logged with final status", func(t *testing.T) {
		entries := runLogged(t, false, unauthorized)
		require.Len(t, entries, 1)
		assert.Equal(t, "WARN", entries[0]["level"])
		assert.Equal(t, float64(http.StatusUnauthorized), entries[0]["status"])
		assert.Equal(t, "/auth/login", entries[0]["uri"])
		assert.NotContains(t, entries[0], "query")
	})
}
