package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"log/slog"

	"github.com/dmitrymomot/sharedkit/pkg/config"
	"github.com/dmitrymomot/sharedkit/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDevelopment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithDevelopment("svc"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=svc")
}

func TestWithProduction(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithProduction("svc"),
		logger.WithOutput(buf),
	)
	require.NotNil(t, log)
	log.Info("msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "svc", entry["service"])
}

func TestEnvironmentOptions(t *testing.T) {
	dev := logger.New(logger.WithDevelopment("svc"))
	prod := logger.New(logger.WithProduction("svc"))
	require.NotNil(t, dev)
	require.NotNil(t, prod)
}

func TestWithExtractors(t *testing.T) {
	buf := &bytes.Buffer{}
	type key string
	k := key("id")
	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if v := ctx.Value(k); v != nil {
			return slog.String("id", v.(string)), true
		}
		return slog.Attr{}, false
	}
	log := logger.New(
		logger.WithProduction("svc"),
		logger.WithOutput(buf),
		logger.WithContextExtractors(extractor),
	)
	ctx := context.WithValue(context.Background(), k, "123")
	log.InfoContext(ctx, "msg")
	var entry map[string]any
	err := json.Unmarshal(buf.Bytes(), &entry)
	require.NoError(t, err)
	assert.Equal(t, "123", entry["id"])
}

func TestFromConfig(t *testing.T) {
	t.Run("loads from environment", func(t *testing.T) {
		t.Setenv("SERVICE_NAME", "cache-worker")
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_LEVEL", "debug")

		var cfg logger.Config
		require.NoError(t, config.Load(&cfg))

		buf := &bytes.Buffer{}
		log := logger.New(logger.FromConfig(cfg), logger.WithOutput(buf))
		log.Debug("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "cache-worker", entry["service"])
		assert.Equal(t, string(logger.Production), entry["env"])
		assert.Equal(t, "DEBUG", entry["level"])
	})

	t.Run("format override", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.FromConfig(logger.Config{Service: "svc", Environment: "prod", Format: "TEXT"}),
			logger.WithOutput(buf),
		)
		log.Info("msg")
		assert.Contains(t, buf.String(), "env=production")
		assert.Contains(t, buf.String(), "service=svc")
	})

	t.Run("development defaults", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.FromConfig(logger.Config{Service: "svc"}),
			logger.WithOutput(buf),
		)
		log.Debug("msg")
		assert.Contains(t, buf.String(), "env=development")
	})

	t.Run("invalid values panic", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.FromConfig(logger.Config{Service: "svc", Level: "loud"}))
		})
		assert.Panics(t, func() {
			logger.New(logger.FromConfig(logger.Config{Service: "svc", Format: "xml"}))
		})
	})
}
