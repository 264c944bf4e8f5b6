// Package trip contains the Trip aggregate: a scheduled run of a train on a
// route with a finite space capacity.
//
// The trip row is the single source of truth for consumed capacity. Reserve
// is the only operation that grows capacity_used, and callers must hold a
// row-level write lock on the trip for the duration of their transaction.
package trip
