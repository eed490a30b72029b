package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pushchain/push-testnet/testnet/config"
)

// New creates a new zerolog logger with the specified configuration.
// Supports console/json format, level filtering, and optional sampling.
func New(logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	return NewWithWriter(os.Stdout, logLevel, logFormat, logSampler)
}

// NewWithWriter is New writing to w instead of stdout.
func NewWithWriter(w io.Writer, logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	writer := w
	if logFormat != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		logger = logger.Sample(&zerolog.BasicSampler{N: 5})
	}
	return logger
}

// Init builds the process logger from cfg.
func Init(cfg config.Config) zerolog.Logger {
	return New(cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
}
