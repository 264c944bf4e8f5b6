package ports

import (
	"context"

	"kandypack/internal/core/domain/model/store"
)

// StoreRepository defines the read contract for destination stores.
type StoreRepository interface {
	// GetAll retrieves all known stores for destination resolution.
	GetAll(ctx context.Context) ([]*store.Store, error)
}
