// Package logger holds the process-wide logger of the lcc tool.
//
// The landed-cost engine never logs; only the command line and the configuration loaders do.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance
	Log zerolog.Logger
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339

	// reports go to stdout, so the log goes to stderr.
	Log = New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	})
}

// New returns a logger writing to w at the warn level.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(zerolog.WarnLevel).
		With().
		Timestamp().
		Logger()
}

// SetLevel sets the log level
func SetLevel(levelStr string) {
	if levelStr == "" {
		return
	}
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		Log.Warn().Str("level", levelStr).Msg("invalid log level, keeping the current one")
		return
	}
	Log = Log.Level(level)
}
