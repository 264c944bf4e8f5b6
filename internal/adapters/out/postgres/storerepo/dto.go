// Package storerepo persists destination store records used for resolving
// where a synthesized trip unloads.
package storerepo

import (
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for store records.
type StoreDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	City string `gorm:"index"`
}

// TableName specifies the database table name for store entities.
func (StoreDTO) TableName() string {
	return "stores"
}

// toDomain converts a database DTO to a store entity.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return store.NewStore(id, dto.Name, dto.City)
}
