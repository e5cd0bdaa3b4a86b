package processing_test

import (
	"context"
	"testing"
	"time"

	"foodorders/internal/core/application/processing"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() processing.Config {
	cfg := processing.DefaultConfig()
	cfg.SettlingDelay = 0
	cfg.PreparingDelay = processing.DelayRange{Min: time.Millisecond, Max: 2 * time.Millisecond}
	cfg.InDeliveryDelay = processing.DelayRange{Min: time.Millisecond, Max: 2 * time.Millisecond}
	cfg.DeliveredDelay = processing.DelayRange{Min: time.Millisecond, Max: 2 * time.Millisecond}
	return cfg
}

func placeTestOrder(t *testing.T, store *fakeStore) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, nil)
	require.NoError(t, err)
	require.NoError(t, store.Add(context.Background(), aggregate))
	return aggregate
}

func newTestTransitioner(t *testing.T, store *fakeStore, cfg processing.Config, sink *fakeSink) *processing.Transitioner {
	t.Helper()
	admission, err := processing.NewAdmissionPolicy(store, cfg.MaxConcurrentOrders)
	require.NoError(t, err)
	transitioner, err := processing.NewTransitioner(&fakeUoWFactory{store: store}, admission, sink, cfg, nil)
	require.NoError(t, err)
	return transitioner
}

func TestTransitionerRunDeliversOrder(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	transitioner := newTestTransitioner(t, store, fastConfig(), sink)
	placed := placeTestOrder(t, store)

	transitioner.Run(context.Background(), placed.ID())

	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Delivered, stored.Status())
	assert.False(t, stored.IsProcessing())
	assert.True(t, stored.IsActive())
	assert.Empty(t, sink.recorded())
}

func TestTransitionerRunAbortsWhenCapReached(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	cfg := fastConfig()
	transitioner := newTestTransitioner(t, store, cfg, sink)

	// Fill the in-flight cap before the run reaches its first edge.
	for range cfg.MaxConcurrentOrders {
		inFlight := placeTestOrder(t, store)
		require.NoError(t, inFlight.Advance())
		require.NoError(t, store.Update(context.Background(), inFlight))
	}
	placed := placeTestOrder(t, store)

	transitioner.Run(context.Background(), placed.ID())

	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Ordered, stored.Status(), "losing admission must leave the order queued")
	assert.False(t, stored.IsProcessing(), "aborted run must release the order")
	assert.Empty(t, sink.recorded(), "losing admission is not an error")
}

func TestTransitionerRunStopsOnContextCancel(t *testing.T) {
	store := newFakeStore()
	cfg := fastConfig()
	cfg.PreparingDelay = processing.DelayRange{Min: time.Second, Max: time.Second}
	transitioner := newTestTransitioner(t, store, cfg, &fakeSink{})
	placed := placeTestOrder(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		transitioner.Run(ctx, placed.ID())
	}()

	// Cancel while the run sleeps before its first edge.
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancellation")
	}

	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Ordered, stored.Status())
	assert.False(t, stored.IsProcessing(), "canceled run must release the order")
}

func TestTransitionerRunSkipsCanceledOrder(t *testing.T) {
	store := newFakeStore()
	transitioner := newTestTransitioner(t, store, fastConfig(), &fakeSink{})
	placed := placeTestOrder(t, store)
	require.NoError(t, placed.Cancel())
	require.NoError(t, store.Update(context.Background(), placed))

	transitioner.Run(context.Background(), placed.ID())

	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Canceled, stored.Status())
	assert.False(t, stored.IsProcessing())
}

func TestTransitionerRunSkipsAlreadyClaimedOrder(t *testing.T) {
	store := newFakeStore()
	transitioner := newTestTransitioner(t, store, fastConfig(), &fakeSink{})
	placed := placeTestOrder(t, store)
	placed.SetProcessing(true)
	require.NoError(t, store.Update(context.Background(), placed))

	transitioner.Run(context.Background(), placed.ID())

	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Ordered, stored.Status(), "an already claimed order must not be advanced")
	assert.True(t, stored.IsProcessing(), "the other run's claim must be preserved")
}

func TestTransitionerRunAbortsWhenOrderCanceledMidRun(t *testing.T) {
	store := newFakeStore()
	cfg := fastConfig()
	cfg.PreparingDelay = processing.DelayRange{Min: 300 * time.Millisecond, Max: 300 * time.Millisecond}
	transitioner := newTestTransitioner(t, store, cfg, &fakeSink{})
	placed := placeTestOrder(t, store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		transitioner.Run(context.Background(), placed.ID())
	}()

	// Cancel the order while the run sleeps, after it has claimed it.
	time.Sleep(50 * time.Millisecond)
	stored, ok := store.get(placed.ID())
	require.True(t, ok)
	require.NoError(t, stored.Cancel())
	require.NoError(t, store.Update(context.Background(), stored))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after the order was canceled")
	}

	final, ok := store.get(placed.ID())
	require.True(t, ok)
	assert.Equal(t, order.Canceled, final.Status(), "a canceled order must never be advanced")
}

func TestTransitionerRunUnknownOrder(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	transitioner := newTestTransitioner(t, store, fastConfig(), sink)

	transitioner.Run(context.Background(), kernel.NewUUID())

	assert.Empty(t, sink.recorded(), "a failed claim is logged, not sunk")
}

func TestTransitionerCapInvariantUnderConcurrentRuns(t *testing.T) {
	store := newFakeStore()
	cfg := fastConfig()
	cfg.PreparingDelay = processing.DelayRange{Min: 10 * time.Millisecond, Max: 20 * time.Millisecond}
	cfg.InDeliveryDelay = cfg.PreparingDelay
	cfg.DeliveredDelay = cfg.PreparingDelay
	transitioner := newTestTransitioner(t, store, cfg, &fakeSink{})

	const total = 6
	ids := make([]kernel.UUID, 0, total)
	for range total {
		ids = append(ids, placeTestOrder(t, store).ID())
	}

	done := make(chan struct{}, total)
	for _, id := range ids {
		go func() {
			transitioner.Run(context.Background(), id)
			done <- struct{}{}
		}()
	}
	for range total {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("runs did not finish")
		}
	}

	delivered := 0
	queued := 0
	for _, id := range ids {
		stored, ok := store.get(id)
		require.True(t, ok)
		assert.False(t, stored.IsProcessing())
		switch stored.Status() {
		case order.Delivered:
			delivered++
		case order.Ordered:
			queued++
		default:
			t.Fatalf("order %s left in %s", id, stored.Status())
		}
	}
	assert.Equal(t, total, delivered+queued)
	assert.GreaterOrEqual(t, delivered, cfg.MaxConcurrentOrders,
		"at least the admitted batch must run to completion")
	assert.LessOrEqual(t, store.maxObservedInFlight(), int64(cfg.MaxConcurrentOrders),
		"no commit may push the in-flight count past the cap")
}

func TestTransitionerAdmissionSerializedAtFirstEdge(t *testing.T) {
	store := newFakeStore()
	sink := &fakeSink{}
	cfg := fastConfig()
	transitioner := newTestTransitioner(t, store, cfg, sink)

	// Occupy all but one slot with orders that stay in flight for the
	// whole test, then race two runs for the last slot.
	for range cfg.MaxConcurrentOrders - 1 {
		inFlight := placeTestOrder(t, store)
		require.NoError(t, inFlight.Advance())
		require.NoError(t, store.Update(context.Background(), inFlight))
	}
	first := placeTestOrder(t, store)
	second := placeTestOrder(t, store)

	done := make(chan struct{}, 2)
	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		go func() {
			transitioner.Run(context.Background(), id)
			done <- struct{}{}
		}()
	}
	for range 2 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("runs did not finish")
		}
	}

	assert.LessOrEqual(t, store.maxObservedInFlight(), int64(cfg.MaxConcurrentOrders),
		"racing first edges must never both take the last slot")

	delivered := 0
	for _, id := range []kernel.UUID{first.ID(), second.ID()} {
		stored, ok := store.get(id)
		require.True(t, ok)
		assert.False(t, stored.IsProcessing())
		switch stored.Status() {
		case order.Delivered:
			delivered++
		case order.Ordered:
		default:
			t.Fatalf("order %s left in %s", id, stored.Status())
		}
	}
	assert.GreaterOrEqual(t, delivered, 1, "the winning run must complete")
	assert.Empty(t, sink.recorded(), "losing admission is not an error")
}
