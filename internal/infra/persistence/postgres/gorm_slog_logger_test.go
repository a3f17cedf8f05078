package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"authgate/config"
	deliverycontext "authgate/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

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

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		err       error
		elapsed   time.Duration
		wantMsg   string
		wantLevel string
	}{
		{name: "query failure", err: errors.New("connection reset"), wantMsg: "GORM query failed", wantLevel: "ERROR"},
		{name: "unique violation", err: gorm.ErrDuplicatedKey, wantMsg: "GORM query failed", wantLevel: "WARN"},
		{name: "slow query", elapsed: time.Second, wantMsg: "GORM slow query", wantLevel: "WARN"},
		{name: "debug query", debug: true, wantMsg: "GORM query", wantLevel: "INFO"},
		{name: "record not found ignored", err: gorm.ErrRecordNotFound},
		{name: "fast query without debug", wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(newBufferLogger(&buf), cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			entries := decodeLines(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, entries)

				return
			}
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantMsg, entries[0]["msg"])
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
			assert.Equal(t, "SELECT 1", entries[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})

	requestLogger := newBufferLogger(&scoped).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	entries := decodeLines(t, &scoped)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-1", entries[0]["request_id"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.LogMode(logger.Info).Info(context.Background(), "shown %d", 2)
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown 2", entries[0]["message"])
}
