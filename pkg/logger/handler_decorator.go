package logger

import (
	"context"
	"log/slog"
	"strings"
)

// RedactedValue replaces the value of every attribute whose key is redacted.
const RedactedValue = "[REDACTED]"

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler. It adds attributes pulled from
// the context of each record and masks attributes whose keys are listed as
// secret, including keys nested inside groups.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// NewLogHandlerDecorator creates a decorated handler with context extractors.
// Nil extractors are skipped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	return newDecorator(next, extractors, nil)
}

// NewRedactingHandler is like NewLogHandlerDecorator and additionally replaces
// the values of the given keys (case-insensitive) with RedactedValue.
func NewRedactingHandler(next slog.Handler, keys []string, extractors ...ContextExtractor) slog.Handler {
	return newDecorator(next, extractors, keys)
}

func newDecorator(next slog.Handler, extractors []ContextExtractor, keys []string) *LogHandlerDecorator {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}

	var redact map[string]struct{}
	if len(keys) > 0 {
		redact = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			redact[strings.ToLower(k)] = struct{}{}
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean, redact: redact}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds context attributes, masks secret ones and delegates to the
// underlying handler. Extraction runs on every call so values stored in the
// context at logging time are used.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 && len(h.redact) == 0 {
		return h.next.Handle(ctx, rec)
	}

	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	if len(h.redact) == 0 {
		return h.next.Handle(ctx, rec)
	}

	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(h.redactAttr(a))
		return true
	})
	return h.next.Handle(ctx, out)
}

// WithAttrs masks secret static attributes before passing them on.
func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(h.redact) > 0 {
		masked := make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			masked[i] = h.redactAttr(a)
		}
		attrs = masked
	}
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(attrs),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) redactAttr(a slog.Attr) slog.Attr {
	if _, ok := h.redact[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, RedactedValue)
	}

	v := a.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return a
	}

	group := v.Group()
	masked := make([]slog.Attr, len(group))
	for i, ga := range group {
		masked[i] = h.redactAttr(ga)
	}
	return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
}
