package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to add tag/package/file filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
	attrs       []slog.Attr // Attributes bound through WithAttrs, checked for tags
	trace       io.Writer   // Receives filter decisions when non-nil
}

func newFilteringHandler(base slog.Handler, cfg *Config, trace io.Writer) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
		trace:       trace,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func (h *filteringHandler) tracef(format string, args ...interface{}) {
	if h.trace != nil {
		fmt.Fprintf(h.trace, "[FILTER] "+format+"\n", args...)
	}
}

// sourceOf returns the package directory and base filename of the record's caller.
func sourceOf(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

// tagOf finds the tag attribute on the record or on attributes bound to the handler.
func (h *filteringHandler) tagOf(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag, found = strings.ToLower(a.Value.String()), true
			return false
		}
		return true
	})
	if found {
		return tag, true
	}
	for _, a := range h.attrs {
		if a.Key == tagKey {
			return strings.ToLower(a.Value.String()), true
		}
	}
	return "", false
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := sourceOf(r); ok {
		if !h.cfg.packages.allows(pkg) {
			h.tracef("dropped %q: package %s", r.Message, pkg)
			return nil
		}
		if !h.cfg.files.allows(file) {
			h.tracef("dropped %q: file %s", r.Message, file)
			return nil
		}
	}

	tag, tagged := h.tagOf(r)
	switch {
	case tagged && !h.cfg.tags.allows(tag):
		h.tracef("dropped %q: tag %s", r.Message, tag)
		return nil
	case !tagged && h.cfg.tags.restricted():
		// Filtering for specific tags drops untagged messages.
		h.tracef("dropped %q: untagged", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg, h.trace)
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return nh
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	nh := newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg, h.trace)
	nh.attrs = h.attrs
	return nh
}
