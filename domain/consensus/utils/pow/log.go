package pow

import "github.com/decred/slog"

// log is the package-level subsystem logger. It defaults to a disabled
// logger so that importing this package as a library produces no output
// unless the embedding application calls UseLogger with its own backend,
// mirroring the subsystem-logger convention used throughout this codebase's
// daemons.
var log = slog.Disabled

// UseLogger sets the logger used by this package. Callers embedding this
// package as a library may supply their own slog backend; the CLI driver in
// cmd/karlsenpow does exactly this at startup.
func UseLogger(logger slog.Logger) {
	log = logger
}
