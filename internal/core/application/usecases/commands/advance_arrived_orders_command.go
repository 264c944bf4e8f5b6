package commands

import (
	"errors"
	"time"

	"kandypack/internal/pkg/guard"
)

var ErrAdvanceArrivedOrdersCommandIsNotConstructed = errors.New(
	"AdvanceArrivedOrdersCommand must be created via NewAdvanceArrivedOrdersCommand constructor",
)

// AdvanceArrivedOrdersCommand triggers the sweep that moves in_transit orders
// to delivered once their trip's arrival time has passed.
// Typically issued periodically by a scheduler.
//
// Example:
//
//	cmd, _ := NewAdvanceArrivedOrdersCommand(time.Now().UTC())
//	handler := NewAdvanceArrivedOrdersCommandHandler(uowFactory)
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Arrival sweep failed: %v", err)
//	}
type AdvanceArrivedOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewAdvanceArrivedOrdersCommand creates a command to advance orders on
// arrived trips. The given time is the sweep's notion of "now".
func NewAdvanceArrivedOrdersCommand(now time.Time) (AdvanceArrivedOrdersCommand, error) {
	advanceCommand := AdvanceArrivedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setNow(now); err != nil {
		return AdvanceArrivedOrdersCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceArrivedOrdersCommandIsNotConstructed if validation fails.
func (c AdvanceArrivedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceArrivedOrdersCommandIsNotConstructed)
}

// Now returns the reference time for the sweep.
func (c AdvanceArrivedOrdersCommand) Now() time.Time {
	return c.now
}

func (c *AdvanceArrivedOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrNowIsRequired
	}

	c.now = now
	return nil
}
