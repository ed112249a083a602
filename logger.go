package fastblur

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false for all levels,
// so the blur paths never build attributes while logging is off.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (h silentHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h silentHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(silentHandler{})

// active holds the logger consulted by GaussianBlur, DropShadow and the
// worker pool. A nil value means silent.
var active atomic.Pointer[slog.Logger]

// SetLogger routes fastblur diagnostics to l; nil turns them off again,
// which is also the state at startup. It may be called while blurs are
// running on other goroutines.
//
// Debug records carry the image size, sigma, pass count and box radii of
// each blur; a warning is logged when a negative sigma is clamped.
//
//	fastblur.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}
