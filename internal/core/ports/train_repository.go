package ports

import (
	"context"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/train"
)

// TrainRepository defines the read contract for train records.
// Allocation never mutates trains.
type TrainRepository interface {
	// Get retrieves a train by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*train.Train, error)

	// GetForUpdate retrieves a train while taking a row-level write lock
	// within the current transaction. Locking the train serializes concurrent
	// trip synthesis for the same train.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*train.Train, error)
}
