// Package logtrace provides logging utilities for the client.
// It integrates with zerolog for structured logging.
package logtrace

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelEnvVar names the environment variable that selects the log level.
// Unset or unrecognized values keep logging disabled so normal CLI output
// stays clean.
const LevelEnvVar = "HOOPUP_LOG_LEVEL"

// InitLogger initializes the global logger with Unix timestamp format.
// Configures zerolog to output to stderr with timestamps. The level comes
// from HOOPUP_LOG_LEVEL; by default nothing is logged.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(levelFromEnv())
}

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func levelFromEnv() zerolog.Level {
	raw := os.Getenv(LevelEnvVar)
	if raw == "" {
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.Disabled
	}
	return level
}
