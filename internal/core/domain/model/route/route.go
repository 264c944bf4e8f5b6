// Package route contains the Route entity: a rail connection between two
// cities. Routes are read-only inputs to allocation.
package route

import (
	"errors"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through the NewRoute factory method.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is a rail connection from a begin city to an end city.
// The end city serves as the destination fallback when no store matches an
// order's destination city directly.
type Route struct {
	id        kernel.UUID
	name      string
	beginCity string
	endCity   string

	guard guard.ConstructorGuard
}

// NewRoute creates a Route record with non-empty name and cities.
func NewRoute(id kernel.UUID, name string, beginCity string, endCity string) (*Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name is required")
	}
	if beginCity == "" {
		return nil, errs.NewValueIsRequiredError("beginCity is required")
	}
	if endCity == "" {
		return nil, errs.NewValueIsRequiredError("endCity is required")
	}

	return &Route{
		id:        id,
		name:      name,
		beginCity: beginCity,
		endCity:   endCity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the route's display name.
func (r *Route) Name() string {
	return r.name
}

// BeginCity returns the route's origin city.
func (r *Route) BeginCity() string {
	return r.beginCity
}

// EndCity returns the route's terminal city.
func (r *Route) EndCity() string {
	return r.endCity
}
