// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database with raw SQL projections,
// bypassing the aggregate model for efficiency.
package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var (
	ErrGetUnservedOrdersQueryIsNotConstructed = errors.New(
		"GetUnservedOrdersQuery must be created via NewGetUnservedOrdersQuery constructor",
	)
)

// GetUnservedOrdersQuery retrieves all orders that have not been served yet.
// Returns orders in "ordered" or "prepared" status for monitoring the queue
// and the counter.
//
// Example:
//
//	query := NewGetUnservedOrdersQuery()
//	handler := NewGetUnservedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unserved orders: %w", err)
//	}
//
//	fmt.Printf("Found %d drinks in flight\n", len(orders))
type GetUnservedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnservedOrdersQuery creates a query to retrieve unserved orders.
// This is a parameterless query that fetches all non-served orders.
func NewGetUnservedOrdersQuery() GetUnservedOrdersQuery {
	return GetUnservedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnservedOrdersQueryIsNotConstructed if validation fails.
func (q GetUnservedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnservedOrdersQueryIsNotConstructed)
}

// GetUnservedOrdersQueryResponse represents one unserved order projection.
type GetUnservedOrdersQueryResponse struct {
	ID     kernel.UUID
	Drink  string
	Size   string
	Status order.Status
}
