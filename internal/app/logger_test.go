package app

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/specgraph/internal/config"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		level       string
		format      string
		wantEnabled slog.Level
		wantSkipped slog.Level
		wantPrefix  string
	}{
		{level: "debug", format: "text", wantEnabled: slog.LevelDebug, wantSkipped: slog.LevelDebug - 4, wantPrefix: "time="},
		{level: "info", format: "json", wantEnabled: slog.LevelInfo, wantSkipped: slog.LevelDebug, wantPrefix: "{"},
		{level: "warn", format: "text", wantEnabled: slog.LevelWarn, wantSkipped: slog.LevelInfo, wantPrefix: "time="},
		{level: "error", format: "json", wantEnabled: slog.LevelError, wantSkipped: slog.LevelWarn, wantPrefix: "{"},
	}

	for _, tc := range testCases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(config.Logging{Level: tc.level, Format: tc.format}, &buf)
			require.NoError(t, err)
			ctx := context.Background()

			assert.True(t, logger.Enabled(ctx, tc.wantEnabled))
			assert.False(t, logger.Enabled(ctx, tc.wantSkipped))

			logger.Log(ctx, tc.wantEnabled, "hello")
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(tc.wantPrefix)), buf.String())
		})
	}
}

func TestNewLogger_RejectsWhatConfigRejects(t *testing.T) {
	testCases := []struct {
		name    string
		logging config.Logging
		wantErr string
	}{
		{"unknown level", config.Logging{Level: "verbose", Format: "text"}, "invalid logging.level"},
		{"unknown format", config.Logging{Level: "info", Format: "xml"}, "invalid logging.format"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newLogger(tc.logging, &bytes.Buffer{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)

			cfg := config.Default()
			cfg.Logging = tc.logging
			assert.Error(t, cfg.Validate())
		})
	}
}
