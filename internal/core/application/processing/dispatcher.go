package processing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// Runner executes the lifecycle of one order. Implemented by Transitioner.
type Runner interface {
	Run(ctx context.Context, orderID kernel.UUID)
}

// Dispatcher launches lifecycle runs as background goroutines. Dispatch
// returns immediately and never surfaces run failures to the caller: a
// placed order is accepted regardless of what happens to it afterwards.
type Dispatcher struct {
	runner        Runner
	settlingDelay time.Duration
	logger        *slog.Logger

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewDispatcher(runner Runner, settlingDelay time.Duration, logger *slog.Logger) (*Dispatcher, error) {
	if runner == nil {
		return nil, errs.NewValueIsRequiredError("runner")
	}
	if settlingDelay < 0 {
		return nil, errs.NewValueIsInvalidError("settlingDelay")
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		runner:        runner,
		settlingDelay: settlingDelay,
		logger:        logger.With("component", "order-dispatcher"),
		baseCtx:       ctx,
		cancel:        cancel,
	}, nil
}

// Dispatch schedules a lifecycle run for the order. The run starts after
// the settling delay so its first read observes the committed creation.
func (d *Dispatcher) Dispatch(orderID kernel.UUID) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("lifecycle run panicked", "orderID", orderID.String(), "panic", r)
			}
		}()

		if d.settlingDelay > 0 {
			timer := time.NewTimer(d.settlingDelay)
			defer timer.Stop()
			select {
			case <-d.baseCtx.Done():
				return
			case <-timer.C:
			}
		}
		d.runner.Run(d.baseCtx, orderID)
	}()
}

// Shutdown cancels in-flight runs and waits for them to drain, up to
// ctx's deadline. Canceled runs release their orders; orders still in
// the Ordered stage are picked up again by the release sweep.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}
