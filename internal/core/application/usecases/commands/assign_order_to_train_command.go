package commands

import (
	"errors"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/guard"
)

var (
	ErrAssignOrderToTrainCommandIsNotConstructed = errors.New(
		"AssignOrderToTrainCommand must be created via NewAssignOrderToTrainCommand constructor",
	)
	ErrTripOrTrainIsRequired = errors.New("exactly one of trip ID or train ID is required")
	ErrRouteRequiresTrain    = errors.New("route ID may only be given together with a train ID")
)

// AssignOrderToTrainCommand represents a request to place an order onto rail
// capacity. The caller targets either an existing trip directly or a train,
// in which case a trip is synthesized for the chosen route.
//
// Exactly one of tripID and trainID must be set; routeID is an optional
// override that only makes sense with trainID.
//
// Example:
//
//	// Place onto a known trip:
//	cmd, err := NewAssignOrderToTrainCommand(orderID, &tripID, nil, nil)
//
//	// Or let the system synthesize a trip for a train's default route:
//	cmd, err := NewAssignOrderToTrainCommand(orderID, nil, &trainID, nil)
//
//	handler := NewAssignOrderToTrainCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("allocation failed: %w", err)
//	}
//	fmt.Printf("Order placed on trip %s, %s space remaining",
//	    result.Trip.TripID, result.Trip.RemainingCapacity)
type AssignOrderToTrainCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	tripID  *kernel.UUID
	trainID *kernel.UUID
	routeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderToTrainCommand creates a command to allocate an order onto
// rail capacity. Validates that the order ID is valid, that exactly one of
// tripID and trainID is provided, and that routeID only accompanies trainID.
func NewAssignOrderToTrainCommand(
	orderID kernel.UUID,
	tripID *kernel.UUID,
	trainID *kernel.UUID,
	routeID *kernel.UUID,
) (AssignOrderToTrainCommand, error) {
	assignCommand := AssignOrderToTrainCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setTarget(tripID, trainID, routeID),
	); err != nil {
		return AssignOrderToTrainCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderToTrainCommandIsNotConstructed if validation fails.
func (c AssignOrderToTrainCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderToTrainCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to place.
func (c AssignOrderToTrainCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TripID returns the target trip, or nil when a train was targeted instead.
func (c AssignOrderToTrainCommand) TripID() *kernel.UUID {
	return c.tripID
}

// TrainID returns the target train, or nil when a trip was targeted instead.
func (c AssignOrderToTrainCommand) TrainID() *kernel.UUID {
	return c.trainID
}

// RouteID returns the route override for trip synthesis, or nil to use the
// train's default route.
func (c AssignOrderToTrainCommand) RouteID() *kernel.UUID {
	return c.routeID
}

func (c *AssignOrderToTrainCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderToTrainCommand) setTarget(tripID, trainID, routeID *kernel.UUID) error {
	if (tripID == nil) == (trainID == nil) {
		return ErrTripOrTrainIsRequired
	}
	if routeID != nil && trainID == nil {
		return ErrRouteRequiresTrain
	}

	for _, id := range []*kernel.UUID{tripID, trainID, routeID} {
		if id == nil {
			continue
		}
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.tripID = tripID
	c.trainID = trainID
	c.routeID = routeID
	return nil
}
