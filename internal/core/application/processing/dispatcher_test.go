package processing_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodorders/internal/core/application/processing"
	"foodorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	mu    sync.Mutex
	runs  []kernel.UUID
	block chan struct{}
	panic bool
}

func (r *recordingRunner) Run(ctx context.Context, orderID kernel.UUID) {
	if r.panic {
		panic("runner blew up")
	}
	r.mu.Lock()
	r.runs = append(r.runs, orderID)
	r.mu.Unlock()
	if r.block != nil {
		select {
		case <-ctx.Done():
		case <-r.block:
		}
	}
}

func (r *recordingRunner) ran() []kernel.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]kernel.UUID(nil), r.runs...)
}

func TestNewDispatcherValidation(t *testing.T) {
	t.Run("requires a runner", func(t *testing.T) {
		_, err := processing.NewDispatcher(nil, 0, nil)
		require.Error(t, err)
	})

	t.Run("rejects a negative settling delay", func(t *testing.T) {
		_, err := processing.NewDispatcher(&recordingRunner{}, -time.Second, nil)
		require.Error(t, err)
	})
}

func TestDispatcherRunsAfterSettlingDelay(t *testing.T) {
	runner := &recordingRunner{}
	dispatcher, err := processing.NewDispatcher(runner, 10*time.Millisecond, nil)
	require.NoError(t, err)
	defer dispatcher.Shutdown(context.Background())

	orderID := kernel.NewUUID()
	dispatcher.Dispatch(orderID)

	assert.Eventually(t, func() bool {
		runs := runner.ran()
		return len(runs) == 1 && runs[0].IsEqual(orderID)
	}, time.Second, 5*time.Millisecond)
}

func TestDispatcherShutdownCancelsPendingRuns(t *testing.T) {
	runner := &recordingRunner{}
	dispatcher, err := processing.NewDispatcher(runner, time.Minute, nil)
	require.NoError(t, err)

	dispatcher.Dispatch(kernel.NewUUID())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx))
	assert.Empty(t, runner.ran(), "a run still settling must not start after shutdown")
}

func TestDispatcherShutdownWaitsForActiveRuns(t *testing.T) {
	runner := &recordingRunner{block: make(chan struct{})}
	dispatcher, err := processing.NewDispatcher(runner, 0, nil)
	require.NoError(t, err)

	dispatcher.Dispatch(kernel.NewUUID())
	assert.Eventually(t, func() bool { return len(runner.ran()) == 1 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx), "shutdown must drain runs that honor cancellation")
}

func TestDispatcherRecoversFromRunnerPanic(t *testing.T) {
	runner := &recordingRunner{panic: true}
	dispatcher, err := processing.NewDispatcher(runner, 0, nil)
	require.NoError(t, err)

	dispatcher.Dispatch(kernel.NewUUID())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, dispatcher.Shutdown(ctx), "a panicking run must not wedge the dispatcher")
}
