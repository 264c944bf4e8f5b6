package ports

import (
	"context"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/route"
)

// RouteRepository defines the read contract for rail routes.
type RouteRepository interface {
	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
