package commands

import (
	"context"
)

// PrepareOrderCommandHandler handles the business logic for preparing a
// specific order. Loads the order, applies the Prepare transition, and
// persists the change transactionally.
type PrepareOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPrepareOrderCommandHandler creates a handler for order preparation operations.
func NewPrepareOrderCommandHandler(uowFactory OrderUoWFactory) PrepareOrderCommandHandler {
	return PrepareOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the prepare command. The Prepare transition itself never
// fails; errors come only from validation or persistence.
func (h *PrepareOrderCommandHandler) Handle(ctx context.Context, cmd PrepareOrderCommand) error {
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

	o.Prepare()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
