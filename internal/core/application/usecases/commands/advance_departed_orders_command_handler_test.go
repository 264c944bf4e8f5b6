package commands_test

import (
	"errors"
	"testing"
	"time"

	"kandypack/internal/core/application/usecases/commands"
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvanceDepartedOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAdvanceDepartedOrdersCommand(now)
	require.NoError(t, err)

	tripID := kernel.NewUUID()
	placedOrder := mustOrderInStatus(t, order.Placed, &tripID)
	scheduledOrder := mustOrderInStatus(t, order.Scheduled, &tripID)
	departed := []*order.Order{placedOrder, scheduledOrder}

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedOnDepartedTrips", ctx, now).Return(departed, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDepartedOrdersCommandHandler(factory)
	advanced, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, advanced)
	assert.Equal(t, order.InTransit, placedOrder.Status())
	assert.Equal(t, order.InTransit, scheduledOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAdvanceDepartedOrdersCommandHandler_Handle_NothingDeparted(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAdvanceDepartedOrdersCommand(now)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedOnDepartedTrips", ctx, now).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDepartedOrdersCommandHandler(factory)
	advanced, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, advanced)
}

func TestAdvanceDepartedOrdersCommandHandler_Handle_QueryError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAdvanceDepartedOrdersCommand(now)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedOnDepartedTrips", ctx, now).Return(nil, errors.New("query error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDepartedOrdersCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "query error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAdvanceDepartedOrdersCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	cmd, err := commands.NewAdvanceDepartedOrdersCommand(now)
	require.NoError(t, err)

	tripID := kernel.NewUUID()
	placedOrder := mustOrderInStatus(t, order.Placed, &tripID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllPlacedOnDepartedTrips", ctx, now).Return([]*order.Order{placedOrder}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAdvanceDepartedOrdersCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
