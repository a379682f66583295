package main

import (
	"fmt"
	"io"
	"log/slog"
)

// logger is replaced by run once the -log-level flag is known.
var logger = slog.Default()

// parseLogLevel accepts the slog level names (debug, info, warn, error) in
// any case, optionally with an offset such as "warn+2".
func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// newLogger returns a text logger writing records at level and above to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
