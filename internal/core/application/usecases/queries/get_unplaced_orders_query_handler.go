package queries

import (
	"context"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnplacedOrdersQueryHandler retrieves orders awaiting allocation from the
// database. Uses direct SQL for read performance in the CQRS pattern; the
// space demand is aggregated from line items in the same statement.
//
// Example:
//
//	handler := NewGetUnplacedOrdersQueryHandler(db)
//	query := NewGetUnplacedOrdersQuery()
//
//	unplaced, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unplaced orders: %v", err)
//	    return err
//	}
//
//	if len(unplaced) > 0 {
//	    fmt.Printf("%d orders awaiting allocation\n", len(unplaced))
//	}
type GetUnplacedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnplacedOrdersQueryHandler creates a handler for unplaced order queries.
// Requires a GORM database connection for query execution.
func NewGetUnplacedOrdersQueryHandler(db *gorm.DB) GetUnplacedOrdersQueryHandler {
	return GetUnplacedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unplaced orders.
// Returns orders in "pending" or "confirmed" status with their derived space
// demand. Results are sorted by order ID for consistent output.
func (h GetUnplacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnplacedOrdersQuery,
) ([]GetUnplacedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUnplacedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.destination_city,
			o.destination_street,
			o.status,
			COALESCE(SUM(i.quantity * i.space_per_unit), 0) AS required_space
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status IN (?, ?)
		GROUP BY o.id, o.destination_city, o.destination_street, o.status
		ORDER BY o.id
	`, order.Pending, order.Confirmed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetUnplacedOrdersQueryResponse
		var id uuid.UUID
		var status int
		var requiredSpace float64

		err = rows.Scan(
			&id,
			&orderResp.DestinationCity,
			&orderResp.DestinationStreet,
			&status,
			&requiredSpace,
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

		space, spaceErr := kernel.NewSpace(requiredSpace)
		if spaceErr != nil {
			return nil, spaceErr
		}
		orderResp.RequiredSpace = space

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
