package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/core/domain/model/trip"
	"kandypack/internal/core/domain/services"
	"kandypack/internal/pkg/errs"
)

var (
	// ErrTripNotFound indicates that the targeted trip does not exist.
	ErrTripNotFound = errors.New("trip not found")

	// ErrTrainNotFound indicates that the targeted train does not exist.
	ErrTrainNotFound = errors.New("train not found")

	// ErrInvalidOrderState indicates the order is not in a placeable status.
	// Only pending and confirmed orders may be allocated.
	ErrInvalidOrderState = errors.New("order is not in a placeable state")

	// ErrNoAllocatableSpace indicates the order demands zero space and there
	// is nothing to allocate.
	ErrNoAllocatableSpace = errors.New("order requires no allocatable space")

	// ErrNoRouteConfigured indicates that no route could be determined for
	// trip synthesis: none was given and the train has no default route, or
	// the chosen route does not exist.
	ErrNoRouteConfigured = errors.New("no route configured for train")

	// ErrInsufficientTrainCapacity indicates the order exceeds even the
	// train's full rated capacity, so no trip of that train could carry it.
	ErrInsufficientTrainCapacity = errors.New("order exceeds train capacity")
)

// TripSnapshot captures the state of the trip an order was placed on, taken
// inside the allocation transaction right before commit.
type TripSnapshot struct {
	TripID            kernel.UUID
	TrainID           kernel.UUID
	RouteID           kernel.UUID
	StoreID           kernel.UUID
	DepartTime        time.Time
	ArriveTime        time.Time
	Capacity          kernel.Space
	CapacityUsed      kernel.Space
	RemainingCapacity kernel.Space
}

// AssignOrderToTrainResult reports a successful allocation: the placed order's
// new status, the space charged against the ledger, and the trip snapshot.
type AssignOrderToTrainResult struct {
	OrderID       kernel.UUID
	OrderStatus   order.Status
	RequiredSpace kernel.Space
	Trip          TripSnapshot
}

// AssignOrderToTrainCommandHandler executes the allocation transaction that
// places an order onto a trip's capacity ledger.
//
// The whole decision happens inside a single database transaction. The order
// row and the trip (or train) row are loaded with row-level write locks, so
// two concurrent allocations against the same trip serialize: the second one
// sees the first one's reservation and fails cleanly if the space is gone.
// Any failure after Begin rolls back every change, including a synthesized
// trip row.
//
// Example:
//
//	handler := NewAssignOrderToTrainCommandHandler(uowFactory)
//	cmd, _ := NewAssignOrderToTrainCommand(orderID, &tripID, nil, nil)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, trip.ErrCapacityExceeded):
//	    log.Println("Trip is full")
//	case errors.Is(err, ErrInvalidOrderState):
//	    log.Println("Order already placed or terminal")
//	case err != nil:
//	    log.Printf("Allocation failed: %v", err)
//	default:
//	    log.Printf("Placed, %s remaining", result.Trip.RemainingCapacity)
//	}
type AssignOrderToTrainCommandHandler struct {
	uowFactory AllocationUoWFactory
}

// NewAssignOrderToTrainCommandHandler creates a handler for order allocation.
// Requires an AllocationUoWFactory spanning order, trip, train, route and
// store repositories.
func NewAssignOrderToTrainCommandHandler(uowFactory AllocationUoWFactory) AssignOrderToTrainCommandHandler {
	return AssignOrderToTrainCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation command.
//
// Steps, all within one transaction:
//  1. Load the order under a write lock; reject unknown orders.
//  2. Reject orders that are not pending or confirmed (ErrInvalidOrderState).
//     A placed order fails here, which is what prevents double allocation.
//  3. Derive the order's required space; reject zero demand before any trip
//     row is touched (ErrNoAllocatableSpace).
//  4. Resolve the target trip: lock and reserve on an existing trip, or
//     synthesize a pre-loaded trip for the targeted train.
//  5. Place the order on the trip and persist both aggregates.
//  6. Commit; any earlier failure rolls everything back.
func (h AssignOrderToTrainCommandHandler) Handle(
	ctx context.Context,
	cmd AssignOrderToTrainCommand,
) (AssignOrderToTrainResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignOrderToTrainResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignOrderToTrainResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AssignOrderToTrainResult{}, ErrOrderNotFound
	}
	if err != nil {
		return AssignOrderToTrainResult{}, err
	}

	if err = existingOrder.Status().ValidatePlace(); err != nil {
		return AssignOrderToTrainResult{}, fmt.Errorf(
			"%w: order %s is %s", ErrInvalidOrderState, existingOrder.ID(), existingOrder.Status(),
		)
	}

	required, err := existingOrder.RequiredSpace()
	if err != nil {
		return AssignOrderToTrainResult{}, err
	}
	if required.IsZero() {
		return AssignOrderToTrainResult{}, ErrNoAllocatableSpace
	}

	targetTrip, err := h.resolveTrip(ctx, uow, cmd, existingOrder, required)
	if err != nil {
		return AssignOrderToTrainResult{}, err
	}

	if err = existingOrder.Place(targetTrip.ID()); err != nil {
		return AssignOrderToTrainResult{}, err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return AssignOrderToTrainResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignOrderToTrainResult{}, err
	}

	return AssignOrderToTrainResult{
		OrderID:       existingOrder.ID(),
		OrderStatus:   existingOrder.Status(),
		RequiredSpace: required,
		Trip: TripSnapshot{
			TripID:            targetTrip.ID(),
			TrainID:           targetTrip.TrainID(),
			RouteID:           targetTrip.RouteID(),
			StoreID:           targetTrip.StoreID(),
			DepartTime:        targetTrip.DepartTime(),
			ArriveTime:        targetTrip.ArriveTime(),
			Capacity:          targetTrip.Capacity(),
			CapacityUsed:      targetTrip.CapacityUsed(),
			RemainingCapacity: targetTrip.Remaining(),
		},
	}, nil
}

// resolveTrip produces the trip the order will be placed on and persists the
// capacity charge. For a trip target it locks the existing row and reserves
// against the freshly read ledger. For a train target it synthesizes a new
// trip pre-loaded with the order's demand.
func (h AssignOrderToTrainCommandHandler) resolveTrip(
	ctx context.Context,
	uow AllocationUoW,
	cmd AssignOrderToTrainCommand,
	existingOrder *order.Order,
	required kernel.Space,
) (*trip.Trip, error) {
	tripRepo := uow.TripRepository()

	if cmd.TripID() != nil {
		targetTrip, err := tripRepo.GetForUpdate(ctx, *cmd.TripID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrTripNotFound
		}
		if err != nil {
			return nil, err
		}

		if _, err = targetTrip.Reserve(required); err != nil {
			return nil, err
		}

		if err = tripRepo.Update(ctx, targetTrip); err != nil {
			return nil, err
		}

		return targetTrip, nil
	}

	newTrip, err := h.synthesizeTrip(ctx, uow, cmd, existingOrder, required)
	if err != nil {
		return nil, err
	}

	if err = tripRepo.Add(ctx, newTrip); err != nil {
		return nil, err
	}

	return newTrip, nil
}

// synthesizeTrip builds a trip for an order targeted at a bare train. The
// train row is locked so two concurrent synthesis attempts for the same train
// serialize. The route comes from the command override or the train's default;
// the destination store is resolved from the order's city against the route.
func (h AssignOrderToTrainCommandHandler) synthesizeTrip(
	ctx context.Context,
	uow AllocationUoW,
	cmd AssignOrderToTrainCommand,
	existingOrder *order.Order,
	required kernel.Space,
) (*trip.Trip, error) {
	targetTrain, err := uow.TrainRepository().GetForUpdate(ctx, *cmd.TrainID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrTrainNotFound
	}
	if err != nil {
		return nil, err
	}

	routeID := cmd.RouteID()
	if routeID == nil {
		routeID = targetTrain.DefaultRoute()
	}
	if routeID == nil {
		return nil, fmt.Errorf("%w: train %s", ErrNoRouteConfigured, targetTrain.ID())
	}

	if targetTrain.Capacity().Less(required) {
		return nil, fmt.Errorf(
			"%w: required %s, rated capacity %s",
			ErrInsufficientTrainCapacity, required, targetTrain.Capacity(),
		)
	}

	targetRoute, err := uow.RouteRepository().Get(ctx, *routeID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: route %s does not exist", ErrNoRouteConfigured, routeID)
	}
	if err != nil {
		return nil, err
	}

	stores, err := uow.StoreRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	destination, err := services.NewDestinationResolver().Resolve(existingOrder, targetRoute, stores)
	if err != nil {
		return nil, err
	}

	return trip.NewTrip(
		kernel.NewUUID(),
		targetTrain.ID(),
		targetRoute.ID(),
		destination.ID(),
		time.Now().UTC(),
		targetTrain.Capacity(),
		required,
	)
}
