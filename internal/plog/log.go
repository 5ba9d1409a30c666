// Package plog wires up the subsystem loggers shared by this module's
// command-line drivers, following the backend/subsystem-logger convention
// used throughout this codebase's daemons (a single io.Writer-backed
// Backend minting one named Logger per subsystem).
package plog

import (
	"io"
	"os"

	"github.com/decred/slog"
)

// backend is the single log sink shared by every subsystem logger minted by
// this package. It defaults to stdout; callers may redirect it with
// SetOutput before calling Subsystem.
var backend = slog.NewBackend(os.Stdout)

// SetOutput redirects all future log output. It has no effect on loggers
// already minted by Subsystem, matching the teacher's backend semantics
// where the backend, not the logger, owns the writer.
func SetOutput(w io.Writer) {
	backend = slog.NewBackend(w)
}

// Subsystem returns a named logger at the given level. tag is conventionally
// a short, all-caps subsystem identifier (e.g. "POW", "CMD").
func Subsystem(tag string, level slog.Level) slog.Logger {
	l := backend.Logger(tag)
	l.SetLevel(level)
	return l
}

// ParseLevel maps a level name (trace, debug, info, warn, error, critical,
// off) to a slog.Level, defaulting to LevelInfo for an unrecognized name.
func ParseLevel(name string) slog.Level {
	switch name {
	case "trace":
		return slog.LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "critical":
		return slog.LevelCritical
	case "off":
		return slog.LevelOff
	default:
		return slog.LevelInfo
	}
}
