// Package observability bootstraps process-wide logging for the fixwire
// tools. Library packages never log on the decode hot path; everything
// observable happens at the tool boundary.
package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger for a named tool and
// returns it. Output goes to stderr so decoded data on stdout stays clean.
func InitLogger(app string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).Level(level).With().
		Timestamp().
		Str("app", app).
		Logger()
	log.Logger = logger
	return logger
}
