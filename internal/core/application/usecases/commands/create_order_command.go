package commands

import (
	"errors"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDestinationCityIsRequired   = errors.New("destination city is required")
	ErrDestinationStreetIsRequired = errors.New("destination street is required")
	ErrOrderItemsAreRequired       = errors.New("at least one order item is required")
)

// CreateOrderCommand represents a request to register a new customer order.
// Encapsulates the destination address and the ordered lines from which the
// order's space demand derives.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Colombo", "123 Galle Road", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting confirmation", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	destinationCity   string
	destinationStreet string
	items             []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates that the order ID is valid, both destination fields are not empty,
// and at least one constructed item is provided.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	destinationCity string,
	destinationStreet string,
	items []order.Item,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDestinationCity(destinationCity),
		orderCommand.setDestinationStreet(destinationStreet),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DestinationCity returns the delivery city.
func (c CreateOrderCommand) DestinationCity() string {
	return c.destinationCity
}

// DestinationStreet returns the delivery street address.
func (c CreateOrderCommand) DestinationStreet() string {
	return c.destinationStreet
}

// Items returns the ordered lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDestinationCity(destinationCity string) error {
	if destinationCity == "" {
		return ErrDestinationCityIsRequired
	}

	c.destinationCity = destinationCity
	return nil
}

func (c *CreateOrderCommand) setDestinationStreet(destinationStreet string) error {
	if destinationStreet == "" {
		return ErrDestinationStreetIsRequired
	}

	c.destinationStreet = destinationStreet
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}
