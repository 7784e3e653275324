package commands_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/ports"
	"eats/internal/eventbus"

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
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) AssignDriver(ctx context.Context, orderID, driverID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, driverID)
	return args.Bool(0), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*restaurant.Restaurant); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRestaurantRepository) GetPromotedExpired(ctx context.Context, now time.Time) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, now)
	if rs, ok := args.Get(0).([]*restaurant.Restaurant); ok {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*restaurant.Dish); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	args := m.Called()
	return args.Get(0).(ports.DishRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRestaurantUoW struct{ mock.Mock }

func (m *MockRestaurantUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

// MockEventPublisher records published events for assertions.
type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ev eventbus.Event) {
	m.Called(ev)
}

func newTestPrincipal(t *testing.T, role principal.Role) principal.Principal {
	t.Helper()

	p, err := principal.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return p
}

func newTestRestaurant(t *testing.T, id, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()

	r, err := restaurant.NewRestaurant(id, ownerID, "Test Kitchen")
	require.NoError(t, err)
	return r
}

func newTestDish(t *testing.T, id, restaurantID kernel.UUID, price int64, options []restaurant.DishOption) *restaurant.Dish {
	t.Helper()

	d, err := restaurant.NewDish(id, restaurantID, "Test Dish", price, options)
	require.NoError(t, err)
	return d
}

func newTestOrder(t *testing.T, customerID, restaurantID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1000, nil)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, restaurantID,
		nil, []order.Item{item}, status, time.Now().UTC())
	require.NoError(t, err)
	return o
}
