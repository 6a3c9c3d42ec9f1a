package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/services"
)

// ServePreparedOrdersCommandHandler serves every order currently in Prepared
// status. Used by the background serving workflow to clear the counter.
type ServePreparedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	shop       services.CoffeeShop
	logger     *slog.Logger
}

// NewServePreparedOrdersCommandHandler creates a handler for the serving workflow.
// The CoffeeShop service renders the serving description that is logged for
// each drink handed over.
func NewServePreparedOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	shop services.CoffeeShop,
	logger *slog.Logger,
) ServePreparedOrdersCommandHandler {
	return ServePreparedOrdersCommandHandler{
		uowFactory: uowFactory,
		shop:       shop,
		logger:     logger,
	}
}

// Handle serves all prepared orders inside a single transaction.
// An empty counter is not an error; the handler simply commits without
// changes.
func (h *ServePreparedOrdersCommandHandler) Handle(ctx context.Context, cmd ServePreparedOrdersCommand) error {
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
	orders, err := orderRepo.GetAllInPreparedStatus(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		h.logger.InfoContext(ctx, h.shop.Serve(o), "order_id", o.ID().String())

		o.Serve()

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
