// Package bootstrap initializes logging configuration before other packages.
//
// This package MUST be imported first (using a blank import) in main.go so
// its init() runs before any package logs during its own initialization.
//
// LANGPACK_LOG_LEVEL selects the zerolog level (default: warn). Logs go to
// stderr so stdout stays clean for JSON, YAML and CSV output.
package bootstrap

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvLogLevel names the variable holding the log level.
const EnvLogLevel = "LANGPACK_LOG_LEVEL"

func init() {
	Configure(os.Getenv(EnvLogLevel))
}

// Configure sets the global level from level and points the global logger at
// a console writer on stderr. Unparseable or empty levels fall back to warn.
func Configure(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()
}
