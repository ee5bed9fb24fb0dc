// Package obslog holds the diagnostic logger shared by latticedraw's
// long-running phases (annealing, cartogram, hill-climb, pipeline), so
// those packages can report progress without threading a logger argument
// through every call. A library caller sees no output until SetLogger is
// invoked; the CLI's --verbose flag is the usual caller.
package obslog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Its Enabled reports false, so slog
// short-circuits each disabled call before evaluating any attribute.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

// silent is the logger every package sees while nothing is installed.
var silent = slog.New(silentHandler{})

// active holds the installed *slog.Logger; a nil pointer value (or an
// empty Value, before the first SetLogger) means the silent default is in
// effect. Swapped atomically: latticedraw's own phases are
// single-threaded, but a host program may flip logging on or off from
// another goroutine mid-run.
var active atomic.Value

// SetLogger installs l as the logger for every latticedraw package that
// reports progress or diagnostics. Passing nil reverts to the silent
// default.
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the installed logger, or the silent default when none is
// installed.
func Logger() *slog.Logger {
	if l, _ := active.Load().(*slog.Logger); l != nil {
		return l
	}
	return silent
}
