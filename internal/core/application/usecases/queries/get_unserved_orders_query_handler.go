package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnservedOrdersQueryHandler retrieves orders still in flight from the
// database. Filters out served orders to provide queue visibility.
type GetUnservedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnservedOrdersQueryHandler creates a handler for unserved order queries.
// Requires a GORM database connection for query execution.
func NewGetUnservedOrdersQueryHandler(db *gorm.DB) GetUnservedOrdersQueryHandler {
	return GetUnservedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unserved orders.
// Returns orders in "ordered" or "prepared" status, sorted by order ID for
// consistent output.
func (h GetUnservedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnservedOrdersQuery,
) ([]GetUnservedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnservedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			drink,
			size,
			status
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.Served).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnservedOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderResp.Drink,
			&orderResp.Size,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID
		orderResp.Status = order.Status(status)
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
