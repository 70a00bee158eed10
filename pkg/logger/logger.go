// Package logger builds the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "viralchemist-backend"

// New returns the service logger. The level comes from LOG_LEVEL and
// falls back to info when unset or unparseable; ENV=development switches
// to human-readable console output with caller annotations.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	development := os.Getenv("ENV") == "development"

	var out io.Writer = os.Stdout
	if development {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName)
	if development {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}
