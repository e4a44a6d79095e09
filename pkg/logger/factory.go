package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development debugging.
	FormatText Format = "text"
)

// Environment names the deployment stage a service runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config is the environment-driven logger configuration, loaded with
// config.Load. Level and Format override the environment defaults when set.
type Config struct {
	Service     string   `env:"SERVICE_NAME" envDefault:"sharedkit"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
	Level       string   `env:"LOG_LEVEL"`
	Format      string   `env:"LOG_FORMAT"`
	RedactKeys  []string `env:"LOG_REDACT_KEYS" envSeparator:"," envDefault:"password,secret,encryption_key,validation_key"`
}

// FromConfig applies cfg on top of the environment defaults.
// Panics on an unknown level or format, like WithFormat.
func FromConfig(cfg Config) Option {
	return func(c *config) {
		WithEnvironment(cfg.Environment, cfg.Service)(c)
		if cfg.Level != "" {
			var l slog.Level
			if err := l.UnmarshalText([]byte(cfg.Level)); err != nil {
				panic(fmt.Errorf("invalid log level %q: %w", cfg.Level, err))
			}
			c.level = l
		}
		if cfg.Format != "" {
			WithFormat(Format(strings.ToLower(cfg.Format)))(c)
		}
		WithRedactedKeys(cfg.RedactKeys...)(c)
	}
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format. Panics on anything but FormatJSON or FormatText.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions replaces the slog.HandlerOptions built from the level.
// Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithRedactedKeys masks the values of attributes with the given keys,
// for example "password" or "encryption_key", in every record.
func WithRedactedKeys(keys ...string) Option {
	return func(c *config) {
		c.redact = append(c.redact, keys...)
	}
}

// WithContextExtractors registers functions that add attributes from the
// logging context. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue logs ctx.Value(key) under name whenever it is set.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment selects text output at debug level and tags records with
// the service name and env=development.
func WithDevelopment(service string) Option {
	return withStage(service, Development, slog.LevelDebug, FormatText)
}

// WithStaging selects JSON output at info level and tags records with env=staging.
func WithStaging(service string) Option {
	return withStage(service, Staging, slog.LevelInfo, FormatJSON)
}

// WithProduction selects JSON output at info level and tags records with env=production.
func WithProduction(service string) Option {
	return withStage(service, Production, slog.LevelInfo, FormatJSON)
}

// WithEnvironment picks one of the stage presets by name. Unknown names,
// including "", fall back to development.
func WithEnvironment(env string, service string) Option {
	switch strings.ToLower(env) {
	case string(Production), "prod":
		return WithProduction(service)
	case string(Staging), "stage":
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

// An empty service name leaves the configuration untouched.
func withStage(service string, env Environment, level slog.Level, format Format) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = level
		c.format = format
		if c.output == nil {
			c.output = os.Stdout
		}
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
	redact         []string
}

// defaultConfig logs JSON at info level to stdout.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger. The handler is wrapped with
// LogHandlerDecorator so context extractors and redaction apply to every record,
// static attributes included.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	var decorated slog.Handler = newDecorator(handler, cfg.extractors, cfg.redact)
	if len(cfg.attrs) > 0 {
		decorated = decorated.WithAttrs(cfg.attrs)
	}
	return slog.New(decorated)
}
