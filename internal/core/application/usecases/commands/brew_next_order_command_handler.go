package commands

import (
	"context"
	"errors"
	"log/slog"

	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"
)

// ErrNoOrderFound indicates that no order is waiting to be brewed.
// This is an expected business scenario, not a system failure: callers
// running on a schedule should treat it as "nothing to do".
var ErrNoOrderFound = errors.New("no order found")

// BrewNextOrderCommandHandler takes the oldest order in Ordered status and
// marks it prepared. Used by the background brewing workflow to drain the
// order queue.
//
// Example:
//
//	handler := NewBrewNextOrderCommandHandler(uowFactory, shop, logger)
//	cmd := NewBrewNextOrderCommand()
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    // Queue is empty
//	}
type BrewNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	shop       services.CoffeeShop
	logger     *slog.Logger
}

// NewBrewNextOrderCommandHandler creates a handler for the brewing workflow.
// The CoffeeShop service renders the brewing description that is logged for
// each drink taken off the queue.
func NewBrewNextOrderCommandHandler(
	uowFactory OrderUoWFactory,
	shop services.CoffeeShop,
	logger *slog.Logger,
) BrewNextOrderCommandHandler {
	return BrewNextOrderCommandHandler{
		uowFactory: uowFactory,
		shop:       shop,
		logger:     logger,
	}
}

// Handle picks the first order in Ordered status, prepares it, and persists
// the change. Returns ErrNoOrderFound when the queue is empty.
func (h *BrewNextOrderCommandHandler) Handle(ctx context.Context, cmd BrewNextOrderCommand) error {
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
	o, err := orderRepo.GetFirstInOrderedStatus(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoOrderFound
		}
		return err
	}

	h.logger.InfoContext(ctx, h.shop.Brew(o.Drink()), "order_id", o.ID().String())

	o.Prepare()

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
