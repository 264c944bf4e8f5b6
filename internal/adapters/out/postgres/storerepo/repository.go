package storerepo

import (
	"context"

	"kandypack/internal/core/domain/model/store"

	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM.
// Stores are read-only reference data; no tracker is needed.
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GORM store repository.
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// GetAll retrieves all stores, ordered by name for stable resolution.
func (r *GormStoreRepository) GetAll(ctx context.Context) ([]*store.Store, error) {
	var dtos []StoreDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	stores := make([]*store.Store, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}

	return stores, nil
}
