// Package routerepo persists rail route records used when synthesizing trips.
package routerepo

import (
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for route records.
type RouteDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	BeginCity string
	EndCity   string
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// toDomain converts a database DTO to a route entity.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.NewRoute(id, dto.Name, dto.BeginCity, dto.EndCity)
}
