package commands

import (
	"context"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/user"
	"foodorders/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
// Cancellation is a direct status write, independent of any background
// run: if a lifecycle run is already sleeping towards the order's first
// edge, it discovers the cancellation at its next re-validation and
// aborts there.
type CancelOrderCommandHandler struct {
	uowFactory CancellationUoWFactory
	sink       ports.ErrorSink
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancellationUoWFactory, sink ports.ErrorSink) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		sink:       sink,
	}
}

// Handle processes the cancellation command. Enforces the owner-or-admin
// rule and the Ordered-only state rule; rejections are recorded in the
// diagnostic log before being returned.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.handle(ctx, cmd); err != nil {
		orderID := cmd.OrderID()
		_ = h.sink.Record(ctx, errorlog.OperationCancelOrder, &orderID, err.Error(), cmd.UserID())
		return err
	}
	return nil
}

func (h *CancelOrderCommandHandler) handle(ctx context.Context, cmd CancelOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if !actor.CanAccessOrder(aggregate.CreatedBy()) {
		return user.ErrAccessDenied
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
