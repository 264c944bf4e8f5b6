package commands

import (
	"context"
	"errors"

	"kandypack/internal/pkg/errs"
)

// ErrOrderNotFound indicates that the referenced order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ConfirmOrderCommandHandler handles order confirmation.
// Advances a pending order to "confirmed" within a transaction, locking the
// order row so concurrent lifecycle changes serialize.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    log.Println("Unknown order")
//	case err != nil:
//	    log.Printf("Confirmation failed: %v", err)
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewConfirmOrderCommandHandler creates a handler for order confirmation.
// Requires an OrderUoWFactory for transactional persistence.
func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order confirmation command.
// Loads the order under a row-level lock, applies the confirmed transition,
// and persists the change. Returns ErrOrderNotFound for unknown orders; the
// domain transition table rejects confirmation from any status other than pending.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existingOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = existingOrder.Confirm(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
