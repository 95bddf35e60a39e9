package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger shared by every entrypoint: console output
// on w with RFC3339 timestamps, level parsed from a LOG_LEVEL-style string.
// An empty or unknown level falls back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
