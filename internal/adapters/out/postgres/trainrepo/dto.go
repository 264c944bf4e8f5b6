// Package trainrepo persists train records. Trains are reference data for
// allocation: trips are synthesized from a train's rated capacity and default
// route, but the train rows themselves are never mutated by allocation.
package trainrepo

import (
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/train"

	"github.com/google/uuid"
)

// TrainDTO represents the database structure for train records.
type TrainDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Capacity       float64    `gorm:"type:numeric(12,4)"`
	Notes          string
	DefaultRouteID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for train entities.
func (TrainDTO) TableName() string {
	return "trains"
}

// fromDomain converts a train entity to its database representation.
func fromDomain(entity *train.Train) TrainDTO {
	var defaultRouteID *uuid.UUID
	if id := entity.DefaultRoute(); id != nil {
		raw := id.Bytes()
		defaultRouteID = &raw
	}

	return TrainDTO{
		ID:             entity.ID().Bytes(),
		Capacity:       entity.Capacity().Units(),
		Notes:          entity.Notes(),
		DefaultRouteID: defaultRouteID,
	}
}

// toDomain converts a database DTO to a train entity.
func toDomain(dto TrainDTO) (*train.Train, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capacity, err := kernel.NewSpace(dto.Capacity)
	if err != nil {
		return nil, err
	}

	var defaultRouteID *kernel.UUID
	if dto.DefaultRouteID != nil {
		rID, routeErr := kernel.UUIDFromBytes((*dto.DefaultRouteID)[:])
		if routeErr != nil {
			return nil, routeErr
		}

		defaultRouteID = &rID
	}

	return train.NewTrain(id, capacity, dto.Notes, defaultRouteID)
}
