package trip

import (
	"errors"
	"fmt"
	"time"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created
	// through the NewTrip or RestoreTrip factory methods.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

	// ErrCapacityExceeded indicates that a reservation did not fit into the
	// trip's remaining capacity. Use errors.Is against this sentinel;
	// the concrete CapacityExceededError carries the amounts.
	ErrCapacityExceeded = errors.New("trip capacity exceeded")
)

// DefaultDuration is the placeholder travel time used when a trip is
// synthesized on demand for a bare train. It is a fixed default, not a
// scheduling decision.
const DefaultDuration = 6 * time.Hour

// CapacityExceededError reports a failed reservation together with the
// amounts the caller needs to decide on a corrective retry.
type CapacityExceededError struct {
	Required  kernel.Space
	Remaining kernel.Space
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: required %s, remaining %s", ErrCapacityExceeded, e.Required, e.Remaining)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// Trip represents one scheduled run of a train on a route towards a
// destination store. It is the aggregate owning the capacity ledger:
//
//	0 <= capacityUsed <= capacity   (within kernel.SpaceEpsilon)
//
// capacityUsed is mutated exclusively by Reserve inside the allocation
// transaction; no other code path may write it. Concurrent allocations
// against the same trip serialize on the trip row's database write lock, so
// every Reserve decision sees the previously committed usage.
type Trip struct {
	// id is the unique identifier for the trip
	id kernel.UUID

	// trainID references the train running this trip
	trainID kernel.UUID

	// routeID references the rail route the trip follows
	routeID kernel.UUID

	// storeID is the destination depot the trip unloads at
	storeID kernel.UUID

	// departTime and arriveTime bound the scheduled run
	departTime time.Time
	arriveTime time.Time

	// capacity is fixed at creation from the train's rated capacity
	capacity kernel.Space

	// capacityUsed accumulates reserved space; never exceeds capacity
	capacityUsed kernel.Space

	guard guard.ConstructorGuard
}

// NewTrip synthesizes a trip for an order assigned directly to a train that
// has no existing trip for the chosen route. The trip departs at departTime,
// arrives DefaultDuration later, carries the train's rated capacity, and
// starts pre-loaded with the triggering order's demand. There is no prior
// usage to race against, so no separate Reserve call is needed.
//
// Returns a CapacityExceededError if initialLoad does not fit the capacity.
func NewTrip(
	id kernel.UUID,
	trainID kernel.UUID,
	routeID kernel.UUID,
	storeID kernel.UUID,
	departTime time.Time,
	capacity kernel.Space,
	initialLoad kernel.Space,
) (*Trip, error) {
	t := &Trip{
		departTime: departTime,
		arriveTime: departTime.Add(DefaultDuration),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTrainID(trainID),
		t.setRouteID(routeID),
		t.setStoreID(storeID),
		t.setDepartTime(departTime),
	); err != nil {
		return nil, err
	}

	if capacity.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"capacity",
			fmt.Errorf("%s is not greater than 0", capacity),
		)
	}
	t.capacity = capacity

	if capacity.Less(initialLoad) {
		return nil, &CapacityExceededError{Required: initialLoad, Remaining: capacity}
	}
	t.capacityUsed = initialLoad

	return t, nil
}

// RestoreTrip reconstructs a Trip from persistent storage, preserving its
// schedule and capacity ledger. The capacity invariant is re-checked so that
// corrupted rows surface as errors instead of silently overbooking.
func RestoreTrip(
	id kernel.UUID,
	trainID kernel.UUID,
	routeID kernel.UUID,
	storeID kernel.UUID,
	departTime time.Time,
	arriveTime time.Time,
	capacity kernel.Space,
	capacityUsed kernel.Space,
) (*Trip, error) {
	t := &Trip{
		arriveTime: arriveTime,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTrainID(trainID),
		t.setRouteID(routeID),
		t.setStoreID(storeID),
		t.setDepartTime(departTime),
	); err != nil {
		return nil, err
	}

	if arriveTime.Before(departTime) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"arriveTime",
			fmt.Errorf("%s is before departure %s", arriveTime, departTime),
		)
	}

	if capacity.Less(capacityUsed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"capacityUsed",
			fmt.Errorf("%s exceeds capacity %s", capacityUsed, capacity),
		)
	}

	t.capacity = capacity
	t.capacityUsed = capacityUsed
	return t, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// TrainID returns the identifier of the train running this trip.
func (t *Trip) TrainID() kernel.UUID {
	return t.trainID
}

// RouteID returns the identifier of the rail route.
func (t *Trip) RouteID() kernel.UUID {
	return t.routeID
}

// StoreID returns the identifier of the destination store.
func (t *Trip) StoreID() kernel.UUID {
	return t.storeID
}

// DepartTime returns the scheduled departure time.
func (t *Trip) DepartTime() time.Time {
	return t.departTime
}

// ArriveTime returns the scheduled arrival time.
func (t *Trip) ArriveTime() time.Time {
	return t.arriveTime
}

// Capacity returns the trip's total space capacity.
func (t *Trip) Capacity() kernel.Space {
	return t.capacity
}

// CapacityUsed returns the space already reserved on the trip.
func (t *Trip) CapacityUsed() kernel.Space {
	return t.capacityUsed
}

// Remaining returns the unreserved space on the trip.
func (t *Trip) Remaining() kernel.Space {
	remaining, err := t.capacity.Sub(t.capacityUsed)
	if err != nil {
		// The invariant makes this unreachable for constructed trips.
		return kernel.Space{}
	}
	return remaining
}

// Reserve consumes amount of the trip's remaining capacity.
//
// The caller must have loaded the trip under a row-level write lock within
// its enclosing transaction; Reserve itself never commits or rolls back.
//
// Preconditions and guarantees:
//   - amount must be positive; a zero or missing demand is the caller's error
//   - the decision is made against the freshly locked row's remaining space,
//     absorbing kernel.SpaceEpsilon of floating rounding
//   - on failure a CapacityExceededError is returned and nothing is changed
//   - on success capacityUsed grows by amount and the new remaining space is
//     returned
func (t *Trip) Reserve(amount kernel.Space) (kernel.Space, error) {
	if amount.IsZero() {
		return kernel.Space{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is not greater than 0", amount),
		)
	}

	remaining := t.Remaining()
	if remaining.Less(amount) {
		return kernel.Space{}, &CapacityExceededError{Required: amount, Remaining: remaining}
	}

	t.capacityUsed = t.capacityUsed.Add(amount)
	return t.Remaining(), nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setTrainID(trainID kernel.UUID) error {
	if err := trainID.Validate(); err != nil {
		return err
	}
	t.trainID = trainID
	return nil
}

func (t *Trip) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	t.routeID = routeID
	return nil
}

func (t *Trip) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	t.storeID = storeID
	return nil
}

func (t *Trip) setDepartTime(departTime time.Time) error {
	if departTime.IsZero() {
		return errs.NewValueIsRequiredError("departTime is required")
	}
	t.departTime = departTime
	return nil
}
