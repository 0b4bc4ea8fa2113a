package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// New creates a logger from the logging configuration.
// Output defaults to os.Stderr when nil.
func New(cfg entities.LoggingConfig, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: ToSlogLevel(cfg.GetLevel()),
	}

	var handler slog.Handler
	if cfg.JSONFormat {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// NewDiscard creates a logger that discards all output
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ToSlogLevel maps a configured level to its slog equivalent
func ToSlogLevel(level entities.LogLevel) slog.Level {
	switch level {
	case entities.LogLevelDebug:
		return slog.LevelDebug
	case entities.LogLevelInfo:
		return slog.LevelInfo
	case entities.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
