// Package store contains the Store entity: a depot that resolves a
// destination city to a concrete unloading point for synthesized trips.
package store

import (
	"errors"
	"strings"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore factory method.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store is a destination depot in a city.
type Store struct {
	id   kernel.UUID
	name string
	city string

	guard guard.ConstructorGuard
}

// NewStore creates a Store record with a non-empty name and city.
func NewStore(id kernel.UUID, name string, city string) (*Store, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name is required")
	}
	if city == "" {
		return nil, errs.NewValueIsRequiredError("city is required")
	}

	return &Store{
		id:    id,
		name:  name,
		city:  city,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Store instance was properly constructed.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the store's display name.
func (s *Store) Name() string {
	return s.name
}

// City returns the city the store serves.
func (s *Store) City() string {
	return s.city
}

// ServesCity reports whether the store serves the given city.
// City names compare case-insensitively.
func (s *Store) ServesCity(city string) bool {
	return strings.EqualFold(strings.TrimSpace(s.city), strings.TrimSpace(city))
}
