package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnabledWithNilOptions(t *testing.T) {
	handler := NewPrettyHandler(&bytes.Buffer{}, nil)

	// Nil options default to info, without panicking on the nil leveler.
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestEnabledRespectsConfiguredLevel(t *testing.T) {
	handler := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelWarn))
}

func TestHandleWritesMessageAndAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPrettyHandler(buf, nil)
	log := slog.New(handler.WithAttrs([]slog.Attr{slog.String("component", "test")}))

	log.Info("server starting", "addr", ":8080")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "server starting")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "addr")
	assert.Contains(t, out, ":8080")
}

func TestHandleFormatsTimeAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(NewPrettyHandler(buf, nil))

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	log.Info("event", "at", at)

	assert.Contains(t, buf.String(), "2026-03-01T12:00:00Z")
}
