package commands

import (
	"errors"
	"time"

	"kandypack/internal/pkg/guard"
)

var (
	ErrAdvanceDepartedOrdersCommandIsNotConstructed = errors.New(
		"AdvanceDepartedOrdersCommand must be created via NewAdvanceDepartedOrdersCommand constructor",
	)
	ErrNowIsRequired = errors.New("now is required")
)

// AdvanceDepartedOrdersCommand triggers the sweep that moves placed and
// scheduled orders to in_transit once their trip's departure time has passed.
// Typically issued periodically by a scheduler.
//
// Example:
//
//	cmd, _ := NewAdvanceDepartedOrdersCommand(time.Now().UTC())
//	handler := NewAdvanceDepartedOrdersCommandHandler(uowFactory)
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Departure sweep failed: %v", err)
//	}
type AdvanceDepartedOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceDepartedOrdersCommand creates a command to advance orders on
// departed trips. The given time is the sweep's notion of "now".
func NewAdvanceDepartedOrdersCommand(now time.Time) (AdvanceDepartedOrdersCommand, error) {
	advanceCommand := AdvanceDepartedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setNow(now); err != nil {
		return AdvanceDepartedOrdersCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDepartedOrdersCommandIsNotConstructed if validation fails.
func (c AdvanceDepartedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDepartedOrdersCommandIsNotConstructed)
}

// Now returns the reference time for the sweep.
func (c AdvanceDepartedOrdersCommand) Now() time.Time {
	return c.now
}

func (c *AdvanceDepartedOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrNowIsRequired
	}

	c.now = now
	return nil
}
