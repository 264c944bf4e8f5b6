package commands

import (
	"context"
)

// AdvanceDepartedOrdersCommandHandler advances orders whose trip has departed.
// Every placed or scheduled order on a departed trip moves to in_transit
// within a single transaction.
//
// Example:
//
//	handler := NewAdvanceDepartedOrdersCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceDepartedOrdersCommand(time.Now().UTC())
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("departure sweep failed: %w", err)
//	}
//	log.Printf("%d orders now in transit", advanced)
type AdvanceDepartedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceDepartedOrdersCommandHandler creates a handler for the departure sweep.
// Requires an OrderUoWFactory for transactional persistence.
func NewAdvanceDepartedOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceDepartedOrdersCommandHandler {
	return AdvanceDepartedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the departure sweep command.
// Retrieves all placed and scheduled orders on trips departed by the command's
// reference time, transitions each to in_transit, and persists the changes in
// one transaction. Returns the number of orders advanced; zero is a normal
// outcome when nothing has departed.
func (h AdvanceDepartedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceDepartedOrdersCommand,
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

	orders, err := orderRepo.GetAllPlacedOnDepartedTrips(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, departedOrder := range orders {
		if err = departedOrder.StartTransit(); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, departedOrder); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
