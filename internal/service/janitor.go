package service

import (
	"context"
	"sync"
	"time"

	"liquidacenter-live/pkg/logger"
)

// janitor runs a named maintenance function on a fixed wall-clock
// interval, the way the original deployment periodically wiped its
// in-memory state. A non-positive interval disables the sweep so
// production deployments can opt out of mid-session data loss.
type janitor struct {
	name     string
	interval time.Duration
	sweep    func(ctx context.Context) error
	logger   *logger.Logger

	mu      sync.Mutex
	ticker  *time.Ticker
	stop    chan struct{}
	running bool
}

func newJanitor(name string, interval time.Duration, sweep func(ctx context.Context) error, log *logger.Logger) *janitor {
	return &janitor{
		name:     name,
		interval: interval,
		sweep:    sweep,
		logger:   log,
	}
}

// Start launches the sweep routine. It is a no-op when already running
// or when the interval disables the sweep.
func (j *janitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return
	}
	if j.interval <= 0 {
		j.logger.WithField("sweep", j.name).Info("Periodic sweep disabled")
		return
	}

	j.ticker = time.NewTicker(j.interval)
	j.stop = make(chan struct{})
	j.running = true

	j.logger.WithFields(map[string]interface{}{
		"sweep":    j.name,
		"interval": j.interval.String(),
	}).Info("Periodic sweep started")

	go j.run(ctx)
}

// Stop halts the sweep routine and waits for no one; pending sweeps
// finish on their own.
func (j *janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return
	}
	j.ticker.Stop()
	close(j.stop)
	j.running = false
	j.logger.WithField("sweep", j.name).Info("Periodic sweep stopped")
}

func (j *janitor) run(ctx context.Context) {
	for {
		select {
		case <-j.ticker.C:
			if err := j.sweep(ctx); err != nil {
				j.logger.WithError(err).WithField("sweep", j.name).Error("Periodic sweep failed")
			}
		case <-j.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
