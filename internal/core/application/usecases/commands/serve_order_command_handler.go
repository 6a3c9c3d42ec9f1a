package commands

import (
	"context"
)

// ServeOrderCommandHandler handles the business logic for serving a specific
// order. Loads the order, applies the Serve transition, and persists the
// change transactionally.
type ServeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewServeOrderCommandHandler creates a handler for order serving operations.
func NewServeOrderCommandHandler(uowFactory OrderUoWFactory) ServeOrderCommandHandler {
	return ServeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the serve command. The Serve transition itself never
// fails; errors come only from validation or persistence.
func (h *ServeOrderCommandHandler) Handle(ctx context.Context, cmd ServeOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	o.Serve()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
