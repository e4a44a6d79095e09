package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Query records an SQL statement under the key "query".
func Query(q string) slog.Attr {
	return slog.String("query", q)
}

// CommandKind records the kind of database command ("exec", "query", "scalar") under the key "kind".
func CommandKind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Cleanup records the name of a cache cleanup under the key "cleanup".
func Cleanup(name string) slog.Attr {
	return slog.String("cleanup", name)
}

// Removed records how many entries an operation removed under the key "removed".
func Removed(n int) slog.Attr {
	return slog.Int("removed", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
