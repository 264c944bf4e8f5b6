package queries

import (
	"context"
	"time"

	"kandypack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripAvailabilityQueryHandler retrieves trip schedules and capacity
// ledgers from the database. Reads committed ledger values only; it never
// takes locks and never writes.
//
// Example:
//
//	handler := NewGetTripAvailabilityQueryHandler(db)
//	query := NewGetTripAvailabilityQuery()
//
//	trips, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get trip availability: %v", err)
//	    return err
//	}
type GetTripAvailabilityQueryHandler struct {
	db *gorm.DB
}

// NewGetTripAvailabilityQueryHandler creates a handler for trip availability queries.
// Requires a GORM database connection for query execution.
func NewGetTripAvailabilityQueryHandler(db *gorm.DB) GetTripAvailabilityQueryHandler {
	return GetTripAvailabilityQueryHandler{db: db}
}

// Handle executes the query to retrieve all trips with their ledgers.
// Results are sorted by departure time, earliest first.
func (h GetTripAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query GetTripAvailabilityQuery,
) ([]GetTripAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trips := make([]GetTripAvailabilityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			train_id,
			route_id,
			store_id,
			depart_time,
			arrive_time,
			capacity,
			capacity_used
		FROM trips
		ORDER BY depart_time, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tripResp GetTripAvailabilityQueryResponse
		var id, trainID, routeID, storeID uuid.UUID
		var departTime, arriveTime time.Time
		var capacity, capacityUsed float64

		err = rows.Scan(
			&id,
			&trainID,
			&routeID,
			&storeID,
			&departTime,
			&arriveTime,
			&capacity,
			&capacityUsed,
		)
		if err != nil {
			return nil, err
		}

		if tripResp.TripID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if tripResp.TrainID, err = kernel.UUIDFromBytes(trainID[:]); err != nil {
			return nil, err
		}
		if tripResp.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
			return nil, err
		}
		if tripResp.StoreID, err = kernel.UUIDFromBytes(storeID[:]); err != nil {
			return nil, err
		}

		tripResp.DepartTime = departTime
		tripResp.ArriveTime = arriveTime

		if tripResp.Capacity, err = kernel.NewSpace(capacity); err != nil {
			return nil, err
		}
		if tripResp.CapacityUsed, err = kernel.NewSpace(capacityUsed); err != nil {
			return nil, err
		}
		if tripResp.RemainingCapacity, err = tripResp.Capacity.Sub(tripResp.CapacityUsed); err != nil {
			return nil, err
		}

		trips = append(trips, tripResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trips, nil
}
