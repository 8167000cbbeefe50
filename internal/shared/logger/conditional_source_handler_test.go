package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		sourceFor  []slog.Level
		wantSource bool
	}{
		{"info is plain by default", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn carries source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error carries source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug mode shows info source", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.sourceFor...))

			log.Log(context.Background(), tt.level, "ticket moved", "ticket_id", 7)

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
			assert.Contains(t, buf.String(), "ticket_id=7")
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	slog.New(handler).With("user_id", "u2").WithGroup("mutation").Info("applied", "status", "CLOSED")

	assert.Contains(t, buf.String(), "user_id=u2")
	assert.Contains(t, buf.String(), "mutation.status=CLOSED")
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}

func TestInterface_SourcePointsAtCaller(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := New(slog.New(NewConditionalSourceHandler(base, slog.LevelWarn)))

	log.Infow("plain")
	assert.NotContains(t, buf.String(), "source=")

	buf.Reset()
	log.Warnw("slow request", "ms", 1200)
	assert.Contains(t, buf.String(), "conditional_source_handler_test.go")
	assert.Contains(t, buf.String(), "ms=1200")
}

func TestInterface_Named(t *testing.T) {
	var buf bytes.Buffer
	log := New(slog.New(slog.NewTextHandler(&buf, nil)))

	log.Named("board").With("ticket_id", 3).Named("tui").Infow("moved")

	out := buf.String()
	assert.Contains(t, out, "logger=board.tui")
	assert.Contains(t, out, "ticket_id=3")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("logger=")), out)
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger().Named("x").With("k", "v")
	assert.NotPanics(t, func() { log.Errorw("ignored", "error", "boom") })
}
