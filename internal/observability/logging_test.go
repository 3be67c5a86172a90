package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestInitLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{
		Level:       "info",
		Format:      "json",
		ServiceName: "wakeloop",
		Output:      &buf,
	})

	logger.Debug("hidden")
	logger.Info("woke", slog.Int("iteration", 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "woke", entry["msg"])
	assert.Equal(t, "wakeloop", entry["service"])
	assert.Equal(t, float64(2), entry["iteration"])
}

func TestInitLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{
		Level:       "debug",
		Format:      "text",
		ServiceName: "wakeloop",
		Output:      &buf,
	})

	logger.Debug("sleeping")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=sleeping")
	assert.Contains(t, out, "service=wakeloop")
	assert.Same(t, logger, slog.Default())
}
