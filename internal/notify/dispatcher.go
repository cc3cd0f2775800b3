// Package notify delivers payroll run events to observers in the background.
package notify

//go:generate mockgen -source=dispatcher.go -destination=mock_dispatcher.go -package=notify

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/clearops/payroll/internal/domain"
	"go.uber.org/zap"
)

const (
	maxRetries     = 3
	retryInterval  = time.Second * 1
	enqueueTimeout = time.Second * 5
)

// ErrPermanent marks an observer failure that a retry cannot fix.
var ErrPermanent = errors.New("permanent notification failure")

// RetryAfterError asks for the next attempt to wait Delay.
type RetryAfterError struct {
	Delay time.Duration
	Err   error
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("retry after %s: %v", e.Delay, e.Err)
}

func (e *RetryAfterError) Unwrap() error {
	return e.Err
}

type Observer interface {
	Name() string
	Notify(ctx context.Context, event domain.RunClosedEvent) error
}

type Dispatcher struct {
	pool          WorkerPoolI
	retryInterval time.Duration

	mu        sync.RWMutex
	observers []Observer
}

func NewDispatcher(pool WorkerPoolI) *Dispatcher {
	return &Dispatcher{
		pool:          pool,
		retryInterval: retryInterval,
	}
}

func (d *Dispatcher) Register(observer Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, observer)
	zap.L().Info("observer registered", zap.String("observer", observer.Name()))
}

// Publish queues event for every registered observer and returns. Delivery
// keeps the values of ctx but not its cancellation, so it outlives the request.
func (d *Dispatcher) Publish(ctx context.Context, event domain.RunClosedEvent) {
	d.mu.RLock()
	observers := append([]Observer(nil), d.observers...)
	d.mu.RUnlock()

	ctx = context.WithoutCancel(ctx)
	for _, observer := range observers {
		observer := observer
		enqueueCtx, cancel := context.WithTimeout(ctx, enqueueTimeout)
		err := d.pool.AddTask(enqueueCtx, func() error {
			return d.deliver(ctx, observer, event)
		})
		cancel()
		if err != nil {
			zap.L().Error("can't queue notification",
				zap.String("observer", observer.Name()),
				zap.Int("run_id", event.RunID),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, observer Observer, event domain.RunClosedEvent) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = observer.Notify(ctx, event)
		if err == nil {
			zap.L().Info("observer notified",
				zap.String("observer", observer.Name()),
				zap.Int("run_id", event.RunID),
				zap.Int("attempt", attempt),
			)
			return nil
		}
		if errors.Is(err, ErrPermanent) || attempt == maxRetries {
			break
		}

		wait := d.retryInterval * time.Duration(attempt)
		var retryAfter *RetryAfterError
		if errors.As(err, &retryAfter) && retryAfter.Delay > 0 {
			wait = retryAfter.Delay
		}
		zap.L().Warn("observer failed, retrying",
			zap.String("observer", observer.Name()),
			zap.Int("run_id", event.RunID),
			zap.Int("attempt", attempt),
			zap.Duration("retryAfter", wait),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("observer %s failed for payroll run %d: %w", observer.Name(), event.RunID, err)
}
