package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"marketplace-contracts-backend/internal/logging"
)

// Dispatcher runs best-effort side effects after a request has committed.
// Tasks get a context detached from the request, bounded by timeout. Failures
// and panics are logged and never reach the caller.
type Dispatcher struct {
	logger  *zap.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(logger *zap.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{logger: logger, timeout: timeout}
}

func (d *Dispatcher) Go(ctx context.Context, task string, fn func(ctx context.Context) error) {
	logger := logging.WithContext(ctx, d.logger).With(zap.String("task", task))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("background task panicked", zap.Any("panic", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			logger.Warn("background task failed", zap.Error(err))
		}
	}()
}

// Wait blocks until every dispatched task has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
