package config

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResolveLogLevel picks the log level for the environment. Development logs
// everything including decoded judge0 diagnostics, other environments start
// at info. A valid level value always wins.
func ResolveLogLevel(environment, level string) zerolog.Level {
	resolved := zerolog.InfoLevel

	if environment == DevelopmentEnvironment {
		resolved = zerolog.DebugLevel
	}

	if level == "" {
		return resolved
	}

	parsed, err := zerolog.ParseLevel(level)

	if err != nil || parsed == zerolog.NoLevel {
		return resolved
	}

	return parsed
}

// ConfigureLogger sets up the global zerolog logger. Development gets the
// human readable console writer, everything else stays JSON.
func ConfigureLogger(environment, level string) {
	if environment == DevelopmentEnvironment {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	zerolog.SetGlobalLevel(ResolveLogLevel(environment, level))
}
