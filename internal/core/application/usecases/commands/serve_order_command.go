package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrServeOrderCommandIsNotConstructed = errors.New(
		"ServeOrderCommand must be created via NewServeOrderCommand constructor",
	)
)

// ServeOrderCommand represents a request to mark a specific order as served.
// Like preparation, the transition is unguarded: serving succeeds even for
// an order that was never prepared.
type ServeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewServeOrderCommand creates a command to serve the order with the given ID.
func NewServeOrderCommand(orderID kernel.UUID) (ServeOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ServeOrderCommand{}, err
	}

	return ServeOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrServeOrderCommandIsNotConstructed if validation fails.
func (c ServeOrderCommand) Validate() error {
	return c.guard.Validate(ErrServeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to serve.
func (c ServeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
