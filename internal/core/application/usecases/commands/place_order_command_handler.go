package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/errorlog"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Resolves the requested dishes against the catalog, persists the order in
// Ordered status, and hands due orders to the background lifecycle engine.
// Orders that cannot start yet (scheduled for later, or waiting behind the
// in-flight cap) stay dormant until the release sweep picks them up.
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	dispatcher OrderDispatcher
	sink       ports.ErrorSink
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	dispatcher OrderDispatcher,
	sink ports.ErrorSink,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		sink:       sink,
	}
}

// Handle processes the order placement command. Rejections are recorded
// in the diagnostic log before being returned to the caller.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.handle(ctx, cmd); err != nil {
		_ = h.sink.Record(ctx, errorlog.OperationPlaceOrder, nil, err.Error(), cmd.UserID())
		return err
	}
	return nil
}

func (h *PlaceOrderCommandHandler) handle(ctx context.Context, cmd PlaceOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.checkDishesExist(ctx, uow.DishRepository(), cmd.DishIDs()); err != nil {
		return err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), cmd.DishIDs(), cmd.ScheduledFor())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Dispatch happens after commit so the background run never observes
	// a half-committed order.
	if aggregate.IsDueAt(time.Now()) {
		h.dispatcher.Dispatch(aggregate.ID())
	}

	return nil
}

// checkDishesExist verifies every distinct dish id resolves to a catalog
// entry. Duplicates are legitimate (one entry per unit ordered), so the
// comparison runs over the distinct set.
func (h *PlaceOrderCommandHandler) checkDishesExist(
	ctx context.Context,
	dishRepo ports.DishRepository,
	dishIDs []kernel.UUID,
) error {
	distinct := make([]kernel.UUID, 0, len(dishIDs))
	seen := make(map[kernel.UUID]struct{}, len(dishIDs))
	for _, dishID := range dishIDs {
		if _, ok := seen[dishID]; ok {
			continue
		}
		seen[dishID] = struct{}{}
		distinct = append(distinct, dishID)
	}

	dishes, err := dishRepo.GetByIDs(ctx, distinct)
	if err != nil {
		return err
	}
	if len(dishes) != len(distinct) {
		found := make(map[kernel.UUID]struct{}, len(dishes))
		for _, d := range dishes {
			found[d.ID()] = struct{}{}
		}
		for _, dishID := range distinct {
			if _, ok := found[dishID]; !ok {
				return errs.NewObjectNotFoundError("dishID", dishID)
			}
		}
	}
	return nil
}
