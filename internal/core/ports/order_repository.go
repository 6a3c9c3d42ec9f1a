package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetFirstInOrderedStatus retrieves the first order in Ordered status.
	// Used by the brewing workflow to find the next drink to prepare.
	GetFirstInOrderedStatus(ctx context.Context) (*order.Order, error)

	// GetAllInPreparedStatus retrieves all orders waiting at the counter.
	// Returns orders that are brewed but not yet handed to the customer.
	GetAllInPreparedStatus(ctx context.Context) ([]*order.Order, error)
}
