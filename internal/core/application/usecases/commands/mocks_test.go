package commands_test

import (
	"context"
	"testing"
	"time"

	"kandypack/internal/core/application/usecases/commands"
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"
	"kandypack/internal/core/domain/model/route"
	"kandypack/internal/core/domain/model/store"
	"kandypack/internal/core/domain/model/train"
	"kandypack/internal/core/domain/model/trip"
	"kandypack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllPlacedOnDepartedTrips(
	ctx context.Context,
	now time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInTransitOnArrivedTrips(
	ctx context.Context,
	now time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

type MockTrainRepository struct{ mock.Mock }

func (m *MockTrainRepository) Get(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*train.Train), args.Error(1)
}

func (m *MockTrainRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*train.Train), args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) GetAll(ctx context.Context) ([]*store.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*store.Store), args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*route.Route), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAllocationUoW struct{ mock.Mock }

func (m *MockAllocationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAllocationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAllocationUoW) TripRepository() ports.TripRepository {
	args := m.Called()
	return args.Get(0).(ports.TripRepository)
}

func (m *MockAllocationUoW) TrainRepository() ports.TrainRepository {
	args := m.Called()
	return args.Get(0).(ports.TrainRepository)
}

func (m *MockAllocationUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

func (m *MockAllocationUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

// Test data helpers shared across command handler tests.

func mustSpace(t *testing.T, units float64) kernel.Space {
	t.Helper()
	space, err := kernel.NewSpace(units)
	require.NoError(t, err)
	return space
}

func mustItem(t *testing.T, quantity int, spacePerUnit float64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, 9.99, mustSpace(t, spacePerUnit))
	require.NoError(t, err)
	return item
}

// mustPendingOrder builds an order bound for Colombo demanding 3 units of space.
func mustPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	pendingOrder, err := order.NewOrder(
		kernel.NewUUID(), "Colombo", "123 Galle Road",
		[]order.Item{mustItem(t, 3, 1)},
	)
	require.NoError(t, err)
	return pendingOrder
}

func mustOrderInStatus(t *testing.T, status order.Status, tripID *kernel.UUID) *order.Order {
	t.Helper()
	restored, err := order.RestoreOrder(
		kernel.NewUUID(), "Colombo", "123 Galle Road",
		status, tripID,
		[]order.Item{mustItem(t, 3, 1)},
	)
	require.NoError(t, err)
	return restored
}

func mustTrip(t *testing.T, capacity, used float64) *trip.Trip {
	t.Helper()
	depart := time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)
	restored, err := trip.RestoreTrip(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		depart, depart.Add(trip.DefaultDuration),
		mustSpace(t, capacity), mustSpace(t, used),
	)
	require.NoError(t, err)
	return restored
}
