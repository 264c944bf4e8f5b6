// Package train contains the Train entity: a static rail resource record.
// Trains are read-only inputs to trip synthesis; allocation never mutates them.
package train

import (
	"errors"
	"fmt"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

// ErrTrainIsNotConstructed is returned when a Train instance was not created
// through the NewTrain factory method.
var ErrTrainIsNotConstructed = errors.New("Train must be created via NewTrain constructor")

// Train is a static resource record: rated capacity, free-form notes, and an
// optional default route used when an allocation names the train but no route.
type Train struct {
	id             kernel.UUID
	capacity       kernel.Space
	notes          string
	defaultRouteID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrain creates a Train record. Rated capacity must be positive;
// notes and the default route are optional.
func NewTrain(id kernel.UUID, capacity kernel.Space, notes string, defaultRouteID *kernel.UUID) (*Train, error) {
	t := &Train{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	t.id = id

	if capacity.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%s is not greater than 0", capacity),
		)
	}
	t.capacity = capacity

	if defaultRouteID != nil {
		if err := defaultRouteID.Validate(); err != nil {
			return nil, err
		}
	}
	t.defaultRouteID = defaultRouteID

	return t, nil
}

// Validate ensures the Train instance was properly constructed.
func (t *Train) Validate() error {
	if t == nil {
		return ErrTrainIsNotConstructed
	}
	return t.guard.Validate(ErrTrainIsNotConstructed)
}

// ID returns the train's unique identifier.
func (t *Train) ID() kernel.UUID {
	return t.id
}

// Capacity returns the train's rated space capacity.
func (t *Train) Capacity() kernel.Space {
	return t.capacity
}

// Notes returns the free-form operator notes.
func (t *Train) Notes() string {
	return t.notes
}

// DefaultRoute returns the configured default route id, or nil when the train
// has none.
func (t *Train) DefaultRoute() *kernel.UUID {
	return t.defaultRouteID
}
