// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the rail allocation system.
// It implements business logic that doesn't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - DestinationResolver: A domain service for resolving an order's
//     destination city to a concrete destination store
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
