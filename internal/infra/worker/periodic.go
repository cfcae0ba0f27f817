package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultInterval = time.Minute

// Periodic runs a task on a fixed interval until stopped. A failed run is
// logged and retried on the next tick.
type Periodic struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPeriodic(name string, interval time.Duration, task func(ctx context.Context) error, logger *slog.Logger) *Periodic {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Periodic{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

func (p *Periodic) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight run to return.
func (p *Periodic) Stop() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	p.wg.Wait()
}

func (p *Periodic) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("worker started", "worker", p.name, "interval", p.interval.String())
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopped", "worker", p.name)
			return
		case <-ticker.C:
			if err := p.task(ctx); err != nil && ctx.Err() == nil {
				p.logger.Error("worker run failed", "worker", p.name, "error", err.Error())
			}
		}
	}
}
