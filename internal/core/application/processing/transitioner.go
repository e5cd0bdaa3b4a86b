package processing

import (
	"context"
	"log/slog"
	"time"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// Transitioner drives a single order through its lifecycle stages.
// Each run claims the order with the isProcessing flag, then walks the
// edges Ordered -> Preparing -> InDelivery -> Delivered, sleeping a
// randomized duration and re-validating the order under a row lock
// before every commit. Lost races abort the run without error.
type Transitioner struct {
	uowFactory OrderUoWFactory
	admission  *AdmissionPolicy
	sink       ports.ErrorSink
	cfg        Config
	logger     *slog.Logger
}

func NewTransitioner(
	uowFactory OrderUoWFactory,
	admission *AdmissionPolicy,
	sink ports.ErrorSink,
	cfg Config,
	logger *slog.Logger,
) (*Transitioner, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if admission == nil {
		return nil, errs.NewValueIsRequiredError("admission")
	}
	if sink == nil {
		return nil, errs.NewValueIsRequiredError("sink")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Transitioner{
		uowFactory: uowFactory,
		admission:  admission,
		sink:       sink,
		cfg:        cfg,
		logger:     logger.With("component", "order-transitioner"),
	}, nil
}

// Run executes the full lifecycle of one order. It blocks for the
// cumulative stage delays and returns when the order is delivered, the
// run loses a race, or ctx is canceled. Run never returns an error:
// infrastructure failures are logged and recorded in the error sink.
func (t *Transitioner) Run(ctx context.Context, orderID kernel.UUID) {
	log := t.logger.With("orderID", orderID.String())

	createdBy, claimed, err := t.claim(ctx, orderID)
	if err != nil {
		log.Error("failed to claim order for processing", "error", err)
		return
	}
	if !claimed {
		log.Info("order is not claimable, skipping run")
		return
	}

	for _, source := range []order.Status{order.Ordered, order.Preparing, order.InDelivery} {
		if !t.sleep(ctx, t.cfg.delayFor(source).Random()) {
			log.Info("run canceled during stage delay", "stage", source.String())
			t.release(ctx, orderID)
			return
		}

		outcome, advErr := t.advance(ctx, orderID, source)
		if advErr != nil {
			t.fail(ctx, log, orderID, createdBy, advErr)
			return
		}
		switch outcome {
		case edgeNotAdmitted:
			// Losing admission is not an error: the order stays in
			// Ordered and the release sweep retries it once capacity
			// frees up.
			log.Info("in-flight cap reached, order stays queued")
			t.release(ctx, orderID)
			return
		case edgeLostRace:
			log.Info("order changed underneath the run, aborting", "stage", source.String())
			t.release(ctx, orderID)
			return
		case edgeCommitted:
		}
		log.Info("order advanced", "from", source.String())
	}

	log.Info("order delivered")
}

// claim marks the order as owned by this run. Returns claimed=false when
// the order is inactive, already past Ordered, or owned by another run.
func (t *Transitioner) claim(ctx context.Context, orderID kernel.UUID) (kernel.UUID, bool, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, false, err
	}
	defer uow.Rollback(ctx)

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if !aggregate.IsActive() || aggregate.Status() != order.Ordered || aggregate.IsProcessing() {
		return kernel.UUID{}, false, nil
	}

	aggregate.SetProcessing(true)
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return kernel.UUID{}, false, err
	}
	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, false, err
	}
	return aggregate.CreatedBy(), true, nil
}

// edgeOutcome is the result of one advance attempt.
type edgeOutcome int

const (
	edgeCommitted edgeOutcome = iota
	edgeLostRace
	edgeNotAdmitted
)

// advance commits one edge. The order is re-read under a row lock and
// the edge is committed only if the order is still active and still in
// the expected source stage. The in-flight cap binds at the entry edge:
// the admission count runs under the admission lock inside this same
// transaction, so two concurrent first edges cannot both see a free slot.
func (t *Transitioner) advance(ctx context.Context, orderID kernel.UUID, source order.Status) (edgeOutcome, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return edgeLostRace, err
	}
	defer uow.Rollback(ctx)

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, orderID)
	if err != nil {
		return edgeLostRace, err
	}
	if !aggregate.IsActive() || aggregate.Status() != source {
		return edgeLostRace, nil
	}

	if source == order.Ordered {
		admitted, admitErr := t.admission.Admit(ctx, repo)
		if admitErr != nil {
			return edgeLostRace, admitErr
		}
		if !admitted {
			return edgeNotAdmitted, nil
		}
	}

	if err := aggregate.Advance(); err != nil {
		return edgeLostRace, err
	}
	if aggregate.Status().IsTerminal() {
		aggregate.SetProcessing(false)
	}
	if err := repo.Update(ctx, aggregate); err != nil {
		return edgeLostRace, err
	}
	if err := uow.Commit(ctx); err != nil {
		return edgeLostRace, err
	}
	return edgeCommitted, nil
}

// release clears the isProcessing flag so the order can be claimed again.
// Best effort: it runs even when the run's context is already canceled.
func (t *Transitioner) release(ctx context.Context, orderID kernel.UUID) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		t.logger.Warn("failed to release order", "orderID", orderID.String(), "error", err)
		return
	}
	defer uow.Rollback(ctx)

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		t.logger.Warn("failed to release order", "orderID", orderID.String(), "error", err)
		return
	}
	if !aggregate.IsProcessing() {
		return
	}

	aggregate.SetProcessing(false)
	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		t.logger.Warn("failed to release order", "orderID", orderID.String(), "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		t.logger.Warn("failed to release order", "orderID", orderID.String(), "error", err)
	}
}

func (t *Transitioner) fail(ctx context.Context, log *slog.Logger, orderID, createdBy kernel.UUID, cause error) {
	log.Error("order processing failed", "error", cause)
	t.release(ctx, orderID)

	sinkCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := t.sink.Record(sinkCtx, errorlog.OperationProcessOrder, &orderID, cause.Error(), createdBy); err != nil {
		log.Error("failed to record processing error", "error", err)
	}
}

func (t *Transitioner) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
