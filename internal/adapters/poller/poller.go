package poller

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/core"
)

// Poller drives the watch service: one cycle runs to completion, then the
// loop idles for the configured interval before the next. Cycles never
// overlap.
type Poller struct {
	service  *core.WatchService
	logger   *zap.Logger
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// New creates a new poller
func New(service *core.WatchService, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		service:  service,
		logger:   logger,
		interval: interval,
	}
}

// Start loads the code history and begins polling in the background
func (p *Poller) Start() error {
	ctx, cancel := context.WithCancel(context.Background())

	if err := p.service.LoadHistory(ctx); err != nil {
		cancel()
		return err
	}

	p.cancel = cancel
	p.done = make(chan struct{})
	go p.loop(ctx)

	return nil
}

// Stop halts polling. The in-flight cycle is interrupted through context
// cancellation; only fully completed notify-then-record pairs are kept.
func (p *Poller) Stop() error {
	if p.cancel == nil {
		return nil
	}
	p.cancel()
	<-p.done
	return nil
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.done)

	for {
		p.runOnce(ctx)

		if ctx.Err() != nil {
			return
		}
		p.logger.Info("Next check scheduled", zap.Duration("in", p.interval))

		select {
		case <-ctx.Done():
			return
		case <-time.After(p.interval):
		}
	}
}

// runOnce executes one cycle. A failed or panicking cycle is logged and the
// loop continues to the idle delay; the process never crashes on a bad cycle.
func (p *Poller) runOnce(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Recovered from panic during cycle", zap.Any("panic", r))
		}
	}()

	result, err := p.service.RunCycle(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Error("Cycle aborted", zap.Error(err))
		}
		return
	}

	if len(result.NotifiedCodes) > 0 {
		p.logger.Info("Cycle complete",
			zap.Int("fetched", result.FetchedPosts),
			zap.Int("accepted", result.AcceptedPosts),
			zap.Strings("notified", result.NotifiedCodes))
	}
}
