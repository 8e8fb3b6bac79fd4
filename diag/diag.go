// Package diag holds the process-wide diagnostics logger shared by the
// sync and thread packages. Logging is off by default; set the
// MPUTILS_DEBUG environment variable to a zerolog level name (for
// example "debug" or "trace") to enable it. Only low-frequency paths
// log through here (thread lifecycle, lock initialization and
// teardown) so enabling it never perturbs steady-state lock traffic.
package diag

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

func init() {
	if lvl, ok := levelFromEnv(os.Getenv("MPUTILS_DEBUG")); ok {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(lvl).
			With().Timestamp().Logger()
	}
}

// levelFromEnv parses the MPUTILS_DEBUG value. An unset or empty value
// leaves diagnostics disabled; an unrecognized value enables them at
// debug level rather than failing.
func levelFromEnv(v string) (zerolog.Level, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "0" || v == "off" || v == "false" {
		return zerolog.Disabled, false
	}
	lvl, err := zerolog.ParseLevel(v)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel, true
	}
	return lvl, true
}

// Logger returns the diagnostics logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetLogger replaces the diagnostics logger. Intended for embedders
// that want lifecycle events routed into their own logging pipeline.
func SetLogger(l zerolog.Logger) {
	logger = l
}
