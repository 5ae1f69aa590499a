package session

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Janitor periodically evicts idle sessions from a Registry.
type Janitor struct {
	registry     *Registry
	ttl          time.Duration
	pollInterval time.Duration
	logger       *slog.Logger
	running      atomic.Bool
}

func NewJanitor(registry *Registry, ttl time.Duration, logger *slog.Logger) *Janitor {
	interval := ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	if interval > 5*time.Minute {
		interval = 5 * time.Minute
	}
	return &Janitor{
		registry:     registry,
		ttl:          ttl,
		pollInterval: interval,
		logger:       logger,
	}
}

// Start blocks until ctx is cancelled. Calling it twice is a no-op.
func (j *Janitor) Start(ctx context.Context) {
	if j.running.Swap(true) {
		return
	}

	j.logger.Info("session janitor started", "ttl", j.ttl.String(), "interval", j.pollInterval.String())

	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("session janitor stopping")
			j.running.Store(false)
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) IsRunning() bool {
	return j.running.Load()
}

func (j *Janitor) sweep() {
	if n := j.registry.EvictIdle(j.ttl); n > 0 {
		j.logger.Info("evicted idle sessions", "count", n, "remaining", j.registry.Len())
	}
}
