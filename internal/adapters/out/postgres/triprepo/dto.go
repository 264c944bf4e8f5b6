// Package triprepo persists trip aggregates, including the capacity ledger
// that the allocation transaction charges orders against.
package triprepo

import (
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
// The capacity_used column is the single authoritative copy of the trip's
// ledger; it is only ever written from within the allocation transaction that
// locked the row.
type TripDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrainID      uuid.UUID `gorm:"type:uuid;index"`
	RouteID      uuid.UUID `gorm:"type:uuid;index"`
	StoreID      uuid.UUID `gorm:"type:uuid"`
	DepartTime   time.Time `gorm:"index"`
	ArriveTime   time.Time `gorm:"index"`
	Capacity     float64   `gorm:"type:numeric(12,4)"`
	CapacityUsed float64   `gorm:"type:numeric(12,4)"`
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	return TripDTO{
		ID:           aggregate.ID().Bytes(),
		TrainID:      aggregate.TrainID().Bytes(),
		RouteID:      aggregate.RouteID().Bytes(),
		StoreID:      aggregate.StoreID().Bytes(),
		DepartTime:   aggregate.DepartTime(),
		ArriveTime:   aggregate.ArriveTime(),
		Capacity:     aggregate.Capacity().Units(),
		CapacityUsed: aggregate.CapacityUsed().Units(),
	}
}

// toDomain converts a database DTO to a trip domain aggregate.
// RestoreTrip re-validates the capacity invariant, so corrupted rows surface
// as errors instead of silently overbooking.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trainID, err := kernel.UUIDFromBytes(dto.TrainID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewSpace(dto.Capacity)
	if err != nil {
		return nil, err
	}

	capacityUsed, err := kernel.NewSpace(dto.CapacityUsed)
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(
		id, trainID, routeID, storeID,
		dto.DepartTime, dto.ArriveTime,
		capacity, capacityUsed,
	)
}
