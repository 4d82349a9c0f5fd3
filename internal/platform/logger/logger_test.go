package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azmath1924/go-rest-starter/internal/config"
)

func TestSetup_Levels(t *testing.T) {
	tests := []struct {
		level       string
		debugOn     bool
		infoEnabled bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"unknown", false, true}, // falls back to info
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log := Setup(config.ServerConfig{LogLevel: tc.level})
			require.NotNil(t, log)

			ctx := context.Background()
			assert.Equal(t, tc.debugOn, log.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tc.infoEnabled, log.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetup_SetsDefault(t *testing.T) {
	log := Setup(config.ServerConfig{LogLevel: "warn"})
	assert.Equal(t, log, slog.Default())
}
