package order

import (
	"errors"
	"fmt"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root
// managing the order lifecycle from creation through train placement to
// delivery.
//
// Order maintains these invariants:
//   - a valid unique identifier and a non-empty destination city
//   - status changes follow the Status transition table
//   - a trip reference is present exactly when the order has been placed
//     on a trip (and stays for the rest of the lifecycle)
//
// Orders are never physically deleted while referenced by trip records; the
// lifecycle ends in the terminal delivered or cancelled statuses instead.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tripID is the train trip the order was placed on (nil if unplaced)
	tripID *kernel.UUID

	// destinationCity resolves to a destination store on placement
	destinationCity string

	// destinationStreet is the customer's delivery address
	destinationStreet string

	// status is the current state in the order lifecycle
	status Status

	// items are the ordered lines; required space derives from them
	items []Item

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - destinationCity: delivery city (must not be empty)
//   - destinationStreet: delivery street address (must not be empty)
//   - items: ordered lines (each must be constructed via NewItem; the list
//     may be empty; such orders exist but can never be allocated)
func NewOrder(id kernel.UUID, destinationCity string, destinationStreet string, items []Item) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDestinationCity(destinationCity),
		o.setDestinationStreet(destinationStreet),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// status and trip assignment. The restored order behaves identically to one
// created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	destinationCity string,
	destinationStreet string,
	status Status,
	tripID *kernel.UUID,
	items []Item,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDestinationCity(destinationCity),
		o.setDestinationStreet(destinationStreet),
		o.setStatus(status),
		o.setTripID(tripID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// DestinationCity returns the delivery city.
func (o *Order) DestinationCity() string {
	return o.destinationCity
}

// DestinationStreet returns the delivery street address.
func (o *Order) DestinationStreet() string {
	return o.destinationStreet
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Trip returns the ID of the trip the order was placed on.
// Returns nil if the order is unplaced.
func (o *Order) Trip() *kernel.UUID {
	return o.tripID
}

// Items returns a copy of the ordered lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// RequiredSpace computes the total train space the order demands:
// the sum of quantity × space-per-unit over all lines. The value is derived
// on demand and never stored redundantly.
func (o *Order) RequiredSpace() (kernel.Space, error) {
	total, err := kernel.NewSpace(0)
	if err != nil {
		return kernel.Space{}, err
	}

	for _, item := range o.items {
		lineSpace, spaceErr := item.Space()
		if spaceErr != nil {
			return kernel.Space{}, spaceErr
		}
		total = total.Add(lineSpace)
	}

	return total, nil
}

// Confirm advances the order from pending to confirmed.
func (o *Order) Confirm() error {
	return o.transitionTo(Confirmed)
}

// Place records the allocation of the order onto a train trip and advances
// the status to placed.
//
// Business rules:
//   - the trip ID must be valid
//   - only unplaced orders (pending or confirmed) may be placed; this is the
//     allocation-specific refinement on top of the generic transition table,
//     and it is what makes a second placement of the same order fail
func (o *Order) Place(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.tripID = &tripID
	return nil
}

// StartTransit advances the order to in_transit when its trip departs.
func (o *Order) StartTransit() error {
	return o.transitionTo(InTransit)
}

// Deliver marks the order as delivered. Delivered is terminal.
func (o *Order) Deliver() error {
	return o.transitionTo(Delivered)
}

// Cancel withdraws the order. Allowed from any non-terminal status.
func (o *Order) Cancel() error {
	return o.transitionTo(Cancelled)
}

// transitionTo applies a lifecycle move after checking it against the
// transition table.
func (o *Order) transitionTo(next Status) error {
	if !o.status.CanTransitionTo(next) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", o.status.String(), next.String()),
		)
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDestinationCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("destinationCity is required")
	}
	o.destinationCity = city
	return nil
}

func (o *Order) setDestinationStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("destinationStreet is required")
	}
	o.destinationStreet = street
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTripID(tripID *kernel.UUID) error {
	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return err
		}
	}
	o.tripID = tripID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
