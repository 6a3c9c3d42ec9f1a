package commands

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var (
	ErrServePreparedOrdersCommandIsNotConstructed = errors.New(
		"ServePreparedOrdersCommand must be created via NewServePreparedOrdersCommand constructor",
	)
)

// ServePreparedOrdersCommand represents a request to hand over every order
// waiting at the counter. Parameterless: the handler serves all orders in
// Prepared status.
type ServePreparedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewServePreparedOrdersCommand creates a command to serve all prepared orders.
func NewServePreparedOrdersCommand() ServePreparedOrdersCommand {
	return ServePreparedOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrServePreparedOrdersCommandIsNotConstructed if validation fails.
func (c ServePreparedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrServePreparedOrdersCommandIsNotConstructed)
}
