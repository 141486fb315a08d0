package hershey

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler is a slog.Handler that drops every record.
// Enabled reports false so callers skip attribute formatting entirely.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(discardHandler{}))
}

// SetLogger configures the logger used by hershey and its sub-packages
// (text, viewer). By default nothing is logged.
//
// Levels used:
//   - [slog.LevelDebug]: per-record and per-file diagnostics
//   - [slog.LevelInfo]: fonts loaded from disk
//   - [slog.LevelWarn]: skipped records, fixed-width/scanning grammar disagreements
//
// Pass nil to restore the silent default. SetLogger is safe for concurrent use.
//
//	hershey.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages call this so that they
// share one configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
