package glplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by glplot and its backends. By default
// nothing is logged; passing nil restores that.
//
// Levels:
//   - [slog.LevelDebug]: geometry uploads, viewport derivation
//   - [slog.LevelInfo]: display and render loop lifecycle
//   - [slog.LevelWarn]: failures while releasing resources
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Backend packages share it through
// this function.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
