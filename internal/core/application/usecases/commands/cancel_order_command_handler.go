package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders that have not shipped yet.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	cancelled, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrIllegalState) {
//	    // order already SHIPPED or COMPLETED
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, cancels it and stores the result in one transaction.
//
// Returns:
//   - *errs.ObjectNotFoundError when no order has the requested id
//   - *errs.IllegalStateError when the order is SHIPPED or COMPLETED; nothing is stored
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Cancel(h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
