package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/dmitrymomot/sharedkit/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates JSON logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
		)
		log.Info("hello")
		out := buf.String()
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "hello")
	})

	t.Run("json formatter option", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("includes default attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(slog.String("svc", "test")),
		)
		log.Info("msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "test", entry["svc"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		ctxKey := key("id")
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				if v := ctx.Value(ctxKey); v != nil {
					return slog.String("id", v.(string)), true
				}
				return slog.Attr{}, false
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")
		var entry map[string]any
		err := json.Unmarshal(buf.Bytes(), &entry)
		require.NoError(t, err)
		assert.Equal(t, "42", entry["id"])
	})
}

func TestSetAsDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	logger.SetAsDefault(log)
	slog.Info("default")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "default", entry["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestRedaction(t *testing.T) {
	t.Run("masks record and static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithRedactedKeys("Password", "encryption_key"),
			logger.WithAttr(slog.String("encryption_key", "00ff")),
		)
		log.Info("login", slog.String("user", "ann"), slog.String("password", "hunter2"))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "ann", entry["user"])
		assert.Equal(t, logger.RedactedValue, entry["password"])
		assert.Equal(t, logger.RedactedValue, entry["encryption_key"])
		assert.NotContains(t, buf.String(), "hunter2")
	})

	t.Run("masks nested groups and context values", func(t *testing.T) {
		buf := &bytes.Buffer{}
		type key string
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithRedactedKeys("secret"),
			logger.WithContextValue("secret", key("s")),
		)
		ctx := context.WithValue(context.Background(), key("s"), "from-context")
		log.InfoContext(ctx, "nested", logger.Group("auth", slog.String("secret", "abc"), slog.Int("n", 1)))

		out := buf.String()
		assert.NotContains(t, out, "abc")
		assert.NotContains(t, out, "from-context")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		group, ok := entry["auth"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, logger.RedactedValue, group["secret"])
		assert.InDelta(t, 1, group["n"], 0)
	})

	t.Run("decorator without redaction passes through", func(t *testing.T) {
		buf := &bytes.Buffer{}
		h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(buf, nil))
		slog.New(h).Info("plain", slog.String("password", "visible"))
		assert.Contains(t, buf.String(), "visible")

		buf.Reset()
		h = logger.NewRedactingHandler(slog.NewJSONHandler(buf, nil), []string{"password"})
		slog.New(h).With(slog.String("password", "static")).WithGroup("g").Info("x")
		assert.NotContains(t, buf.String(), "static")
	})
}
