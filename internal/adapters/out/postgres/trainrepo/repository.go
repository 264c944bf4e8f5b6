package trainrepo

import (
	"context"
	"errors"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/train"
	"kandypack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrainRepository implements TrainRepository using GORM.
// Trains are read-only reference data; no tracker is needed.
type GormTrainRepository struct {
	db *gorm.DB
}

// NewGormTrainRepository creates a new GORM train repository.
func NewGormTrainRepository(db *gorm.DB) *GormTrainRepository {
	return &GormTrainRepository{db: db}
}

// Get retrieves a train by ID.
func (r *GormTrainRepository) Get(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrainDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("train", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a train by ID while taking a row-level write lock
// (SELECT ... FOR UPDATE). The lock serializes concurrent trip synthesis for
// the same train even though the train row itself is never changed.
func (r *GormTrainRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrainDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("train", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
