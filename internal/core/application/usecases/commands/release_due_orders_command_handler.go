package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/ports"
)

// AdmissionPolicy reports whether the in-flight cap leaves room for one
// more order. Implemented by processing.AdmissionPolicy.
type AdmissionPolicy interface {
	TryAdmit(ctx context.Context) (bool, error)
}

// ReleaseDueOrdersCommandHandler performs one release sweep.
// It reads the dormant orders that are due, re-checks admission for each,
// and hands the admitted ones to the dispatcher. Candidates that cannot
// be released this sweep stay dormant and are re-evaluated on the next
// one; a single candidate's failure never aborts the rest of the sweep.
type ReleaseDueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	admission  AdmissionPolicy
	dispatcher OrderDispatcher
	sink       ports.ErrorSink
}

// NewReleaseDueOrdersCommandHandler creates a handler for the release sweep.
func NewReleaseDueOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	admission AdmissionPolicy,
	dispatcher OrderDispatcher,
	sink ports.ErrorSink,
) ReleaseDueOrdersCommandHandler {
	return ReleaseDueOrdersCommandHandler{
		uowFactory: uowFactory,
		admission:  admission,
		dispatcher: dispatcher,
		sink:       sink,
	}
}

// Handle processes one sweep. The admission check here is an early
// reject: the lifecycle run re-checks it before committing its first
// edge, so over-dispatch cannot break the in-flight cap.
func (h *ReleaseDueOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseDueOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	due, err := uow.OrderRepository().FindDueForRelease(ctx, time.Now())
	if err != nil {
		return err
	}
	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range due {
		admitted, admitErr := h.admission.TryAdmit(ctx)
		if admitErr != nil {
			// A fault on one candidate must not starve the rest of the
			// sweep. Record it and move on; the next tick retries.
			orderID := aggregate.ID()
			_ = h.sink.Record(ctx, errorlog.OperationScheduleOrder, &orderID,
				admitErr.Error(), aggregate.CreatedBy())
			continue
		}
		if !admitted {
			// Only explicitly scheduled orders get a diagnostic entry.
			// Immediate orders queue behind the cap on every sweep and
			// recording each of them would flood the log.
			if aggregate.ScheduledFor() != nil {
				orderID := aggregate.ID()
				_ = h.sink.Record(ctx, errorlog.OperationScheduleOrder, &orderID,
					"maximum number of concurrent orders reached", aggregate.CreatedBy())
			}
			continue
		}

		h.dispatcher.Dispatch(aggregate.ID())
	}

	return nil
}
