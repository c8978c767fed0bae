package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// Redacted replaces the value of any attribute listed in PrivilegedKeys.
const Redacted = "[redacted]"

// PrivilegedKeys are attribute keys that may carry attorney-client material.
// Their values never reach a log sink.
var PrivilegedKeys = []string{"intake", "client_name", "review_text", "description"}

// firmHandler decorates a handler with two rules: records at or above
// sourceLevel get a source attribute, and privileged attributes are masked.
type firmHandler struct {
	next        slog.Handler
	sourceLevel slog.Level
	redact      map[string]struct{}
}

// NewFirmHandler wraps next. next should be built with AddSource false.
func NewFirmHandler(next slog.Handler, sourceLevel slog.Level, redactKeys ...string) slog.Handler {
	redact := make(map[string]struct{}, len(redactKeys))
	for _, k := range redactKeys {
		redact[k] = struct{}{}
	}
	return &firmHandler{next: next, sourceLevel: sourceLevel, redact: redact}
}

func (h *firmHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *firmHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.mask(a))
		return true
	})

	if r.Level >= h.sourceLevel && r.PC != 0 {
		f, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		out.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}

	return h.next.Handle(ctx, out)
}

func (h *firmHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = h.mask(a)
	}
	return &firmHandler{next: h.next.WithAttrs(masked), sourceLevel: h.sourceLevel, redact: h.redact}
}

func (h *firmHandler) WithGroup(name string) slog.Handler {
	return &firmHandler{next: h.next.WithGroup(name), sourceLevel: h.sourceLevel, redact: h.redact}
}

func (h *firmHandler) mask(a slog.Attr) slog.Attr {
	if _, ok := h.redact[a.Key]; ok {
		return slog.String(a.Key, Redacted)
	}
	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		masked := make([]any, len(group))
		for i, g := range group {
			masked[i] = h.mask(g)
		}
		return slog.Group(a.Key, masked...)
	}
	return a
}
