package observability

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		enabled slog.Level
	}{
		{"json info", "info", "json", slog.LevelInfo},
		{"text debug", "debug", "text", slog.LevelDebug},
		{"warn", "warn", "json", slog.LevelWarn},
		{"error", "error", "json", slog.LevelError},
		{"unknown level defaults to info", "verbose", "json", slog.LevelInfo},
		{"unknown format defaults to json", "info", "yaml", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level, tt.format)
			require.NotNil(t, logger)
			assert.True(t, logger.Enabled(context.Background(), tt.enabled))
			if tt.enabled > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tt.enabled-4))
			}
		})
	}
}

func TestNewMetricsForTesting_Isolated(t *testing.T) {
	// Two instances must not panic with duplicate registration.
	m1 := NewMetricsForTesting()
	m2 := NewMetricsForTesting()

	m1.MessagesConsumed.Inc()
	m2.MessagesConsumed.Add(2)
	m1.EntitiesParsed.Add(5)
	m1.GeocodeRequests.WithLabelValues("success").Inc()

	require.NotNil(t, m1.SignalLevels)
}
