package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prosescan/prosescan/internal/textutil"
)

// DefaultMaxAttrChars is the longest string attribute TrimHandler passes
// through unmodified. Long enough to keep a whole line of prose readable
// in a log, short enough that a pasted document cannot flood the output.
const DefaultMaxAttrChars = 256

// TrimHandler wraps an slog.Handler and truncates oversized string
// attributes. Analysis code routinely logs lines and snippets of the
// document under check; without trimming, one debug statement can emit the
// whole input.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites stay free of ad-hoc truncation logic
type TrimHandler struct {
	handler  slog.Handler
	maxChars int
}

// NewTrimHandler creates a TrimHandler wrapping handler. If handler is
// nil, slog.Default().Handler() is used. maxChars <= 0 selects
// DefaultMaxAttrChars.
func NewTrimHandler(handler slog.Handler, maxChars int) *TrimHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxAttrChars
	}
	return &TrimHandler{handler: handler, maxChars: maxChars}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TrimHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle trims the record's attributes and passes it on.
func (h *TrimHandler) Handle(ctx context.Context, r slog.Record) error {
	trimmed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		trimmed.AddAttrs(h.trimAttr(a))
		return true
	})
	return h.handler.Handle(ctx, trimmed)
}

// WithAttrs returns a new handler with the given attributes added,
// trimmed first.
func (h *TrimHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	trimmedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		trimmedAttrs[i] = h.trimAttr(a)
	}
	return &TrimHandler{handler: h.handler.WithAttrs(trimmedAttrs), maxChars: h.maxChars}
}

// WithGroup returns a new handler with the given group name.
func (h *TrimHandler) WithGroup(name string) slog.Handler {
	return &TrimHandler{handler: h.handler.WithGroup(name), maxChars: h.maxChars}
}

// trimAttr truncates a single attribute, recursively handling groups.
// Truncation is character-boundary safe, so trimmed CJK text stays valid.
func (h *TrimHandler) trimAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		trimmedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			trimmedAttrs[i] = h.trimAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(trimmedAttrs...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}
	s := a.Value.String()
	total := textutil.CharCount(s)
	if total <= h.maxChars {
		return a
	}
	return slog.String(a.Key, fmt.Sprintf("%s... (%d chars trimmed)",
		textutil.TruncateChars(s, h.maxChars), total-h.maxChars))
}

// NewLogger creates a text-format slog.Logger with attribute trimming.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTrimHandler(slog.NewTextHandler(w, handlerOptions(verbose)), 0))
}

// NewJSONLogger creates a JSON-format slog.Logger with attribute trimming.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTrimHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), 0))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
