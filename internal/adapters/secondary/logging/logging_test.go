package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

func TestNew(t *testing.T) {
	t.Run("text handler respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(entities.LoggingConfig{Level: "info"}, &buf)

		logger.Debug("hidden")
		logger.Info("shown", slog.String("path", "01-intro.md"))

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "path=01-intro.md")
	})

	t.Run("default level is warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(entities.LoggingConfig{}, &buf)

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("json handler", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(entities.LoggingConfig{Level: "debug", JSONFormat: true}, &buf)

		logger.Debug("reading slide", slog.Int("position", 2))

		var record map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "reading slide", record["msg"])
		assert.Equal(t, float64(2), record["position"])
	})
}

func TestToSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ToSlogLevel(entities.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, ToSlogLevel(entities.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, ToSlogLevel(entities.LogLevelWarn))
	assert.Equal(t, slog.LevelError, ToSlogLevel(entities.LogLevelError))
	assert.Equal(t, slog.LevelWarn, ToSlogLevel("bogus"))
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
