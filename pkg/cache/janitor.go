package cache

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

// Janitor runs registered cleanups, each at its own frequency, from a single ticker.
type Janitor struct {
	mu       sync.RWMutex
	cleanups map[string]*scheduledCleanup
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

type scheduledCleanup struct {
	name      string
	cleanup   Cleanup
	frequency time.Duration
	nextRun   time.Time
}

// JanitorOption configures a Janitor.
type JanitorOption func(*Janitor)

// WithCheckInterval sets how often the janitor looks for due cleanups.
func WithCheckInterval(d time.Duration) JanitorOption {
	return func(j *Janitor) {
		if d > 0 {
			j.interval = d
		}
	}
}

// WithJanitorLogger sets the logger for cleanup results.
func WithJanitorLogger(l *slog.Logger) JanitorOption {
	return func(j *Janitor) {
		if l != nil {
			j.logger = l
		}
	}
}

// WithJanitorClock overrides time.Now.
func WithJanitorClock(now func() time.Time) JanitorOption {
	return func(j *Janitor) {
		if now != nil {
			j.now = now
		}
	}
}

// NewJanitor creates a janitor checking every 30 seconds by default.
func NewJanitor(opts ...JanitorOption) *Janitor {
	j := &Janitor{
		cleanups: make(map[string]*scheduledCleanup),
		interval: 30 * time.Second,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	j.logger = j.logger.With(logger.Component("cache.janitor"))
	return j
}

// Register schedules c to run every frequency, starting one frequency from now.
func (j *Janitor) Register(name string, c Cleanup, frequency time.Duration) error {
	if c == nil {
		return ErrCleanupNil
	}
	if frequency <= 0 {
		return ErrInvalidFrequency
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, exists := j.cleanups[name]; exists {
		return ErrCleanupAlreadyRegistered
	}
	j.cleanups[name] = &scheduledCleanup{
		name:      name,
		cleanup:   c,
		frequency: frequency,
		nextRun:   j.now().Add(frequency),
	}

	j.logger.Debug("registered cache cleanup",
		logger.Cleanup(name),
		logger.Duration(frequency))
	return nil
}

// Unregister removes the named cleanup and reports whether it existed.
func (j *Janitor) Unregister(name string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, ok := j.cleanups[name]
	delete(j.cleanups, name)
	return ok
}

// Start runs due cleanups on every tick until ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) error {
	j.mu.RLock()
	count := len(j.cleanups)
	j.mu.RUnlock()

	if count == 0 {
		return ErrJanitorNotConfigured
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Debug("janitor shutting down")
			return ctx.Err()
		case <-ticker.C:
			j.Sweep(ctx)
		}
	}
}

// Sweep runs every cleanup that is due and returns the total number of removed entries.
// A failing cleanup is logged and retried at its next scheduled time.
func (j *Janitor) Sweep(ctx context.Context) int {
	now := j.now()

	j.mu.Lock()
	due := make([]scheduledCleanup, 0, len(j.cleanups))
	for _, sc := range j.cleanups {
		if !now.Before(sc.nextRun) {
			sc.nextRun = now.Add(sc.frequency)
			due = append(due, *sc)
		}
	}
	j.mu.Unlock()

	total := 0
	for _, sc := range due {
		start := time.Now()
		removed, err := sc.cleanup.Cleanup(ctx)
		total += removed
		if err != nil {
			j.logger.ErrorContext(ctx, "cache cleanup failed",
				logger.Cleanup(sc.name),
				logger.Removed(removed),
				logger.Error(err))
			continue
		}
		j.logger.DebugContext(ctx, "cache cleanup finished",
			logger.Cleanup(sc.name),
			logger.Removed(removed),
			logger.Duration(time.Since(start)))
	}
	return total
}
