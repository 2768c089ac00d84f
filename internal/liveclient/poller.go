package liveclient

import (
	"context"
	"sync"
	"time"

	"liquidacenter-live/pkg/logger"
)

// Poller invokes a fetch function on a fixed interval. Fetch errors are
// logged and skipped; polling is idempotent and the next tick simply
// retries. Stop cancels the loop and releases its ticker, so a poller's
// lifetime can be tied to the view that created it.
type Poller struct {
	interval time.Duration
	fetch    func(ctx context.Context) error
	logger   *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

func NewPoller(interval time.Duration, fetch func(ctx context.Context) error, log *logger.Logger) *Poller {
	return &Poller{
		interval: interval,
		fetch:    fetch,
		logger:   log,
	}
}

// Start begins polling. The first fetch happens immediately, then on
// every tick. Starting an already-running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true

	go p.run(ctx)
}

// Stop cancels the poll loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	if err := p.fetch(ctx); err != nil && ctx.Err() == nil {
		p.logger.WithError(err).Debug("Poll fetch failed, will retry")
	}

	for {
		select {
		case <-ticker.C:
			if err := p.fetch(ctx); err != nil && ctx.Err() == nil {
				p.logger.WithError(err).Debug("Poll fetch failed, will retry")
			}
		case <-ctx.Done():
			return
		}
	}
}
