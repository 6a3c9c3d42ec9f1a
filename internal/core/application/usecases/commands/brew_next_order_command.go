package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var (
	ErrBrewNextOrderCommandIsNotConstructed = errors.New(
		"BrewNextOrderCommand must be created via NewBrewNextOrderCommand constructor",
	)
)

// BrewNextOrderCommand represents a request to brew the oldest waiting order.
// Parameterless: the handler picks the first order in Ordered status.
type BrewNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewBrewNextOrderCommand creates a command to brew the next waiting order.
func NewBrewNextOrderCommand() BrewNextOrderCommand {
	return BrewNextOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrBrewNextOrderCommandIsNotConstructed if validation fails.
func (c BrewNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrBrewNextOrderCommandIsNotConstructed)
}
