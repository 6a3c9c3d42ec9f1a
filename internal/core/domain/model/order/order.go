package order

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a single coffee order. It is the aggregate root that
// tracks a drink through its lifecycle from being placed to being served.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Drink and size are set exactly once, at construction, and never change
//   - Status starts at Ordered and is modified only through Prepare and Serve
//   - Can only be created through NewOrder constructor
//
// Drink and size are free-form text labels. The model is intentionally
// permissive: empty labels and unconventional sizes are accepted, and no
// guard rejects out-of-order Prepare/Serve calls. Every operation on a
// constructed Order succeeds.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// drink is the label of the requested drink, immutable after creation
	drink string

	// size is the label of the requested size, immutable after creation
	size string

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in Ordered status.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - drink: Label of the requested drink, e.g. "Latte"
//   - size: Label of the requested size, e.g. "medium"
//
// Only the identifier is validated. Drink and size accept any text value,
// including the empty string.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	o, err := order.NewOrder(orderID, "Cappuccino", "small")
//	if err != nil {
//	    // id was invalid
//	}
func NewOrder(id kernel.UUID, drink string, size string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		drink:         drink,
		size:          size,
		status:        Ordered,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// Unlike NewOrder it validates the status value, since data loaded from
// storage may carry arbitrary integers.
func RestoreOrder(id kernel.UUID, drink string, size string, status Status) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		drink:         drink,
		size:          size,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing initialization by
// directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Drink returns the drink label the order was placed with.
func (o *Order) Drink() string {
	return o.drink
}

// Size returns the size label the order was placed with.
func (o *Order) Size() string {
	return o.size
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Prepared reports whether the order is currently in Prepared status.
// Pure query, no side effects.
func (o *Order) Prepared() bool {
	return o.status == Prepared
}

// Served reports whether the order is currently in Served status.
// Pure query, no side effects.
func (o *Order) Served() bool {
	return o.status == Served
}

// Prepare marks the order as prepared.
//
// The transition is unconditional: it sets the status to Prepared regardless
// of the current state, including an already served order. It never fails
// and calling it repeatedly is idempotent.
func (o *Order) Prepare() {
	o.status = o.status.Prepare()
}

// Serve marks the order as served.
//
// Like Prepare, the transition is unconditional and total: an order that was
// never prepared moves straight to Served.
func (o *Order) Serve() {
	o.status = o.status.Serve()
}
