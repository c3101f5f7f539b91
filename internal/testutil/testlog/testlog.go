// Package testlog routes zerolog output through the test runner so log
// lines attach to the failing test.
package testlog

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Start(t *testing.T) zerolog.Logger {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t)).With().
		Str("test", t.Name()).Logger()
	log.Logger = logger
	return logger
}
