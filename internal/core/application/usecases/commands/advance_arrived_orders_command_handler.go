package commands

import (
	"context"
)

// AdvanceArrivedOrdersCommandHandler completes orders whose trip has arrived.
// Every in_transit order on an arrived trip moves to the terminal delivered
// status within a single transaction.
//
// Example:
//
//	handler := NewAdvanceArrivedOrdersCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceArrivedOrdersCommand(time.Now().UTC())
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("arrival sweep failed: %w", err)
//	}
//	log.Printf("%d orders delivered", advanced)
type AdvanceArrivedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceArrivedOrdersCommandHandler creates a handler for the arrival sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceArrivedOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceArrivedOrdersCommandHandler {
	return AdvanceArrivedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival sweep command.
// Retrieves all in_transit orders on trips arrived by the command's reference
// time, transitions each to delivered, and persists the changes in one
// transaction. Returns the number of orders delivered; zero is a normal
// outcome when nothing has arrived.
func (h AdvanceArrivedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceArrivedOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllInTransitOnArrivedTrips(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, arrivedOrder := range orders {
		if err = arrivedOrder.Deliver(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, arrivedOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
