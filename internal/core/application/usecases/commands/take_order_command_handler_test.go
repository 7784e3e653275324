package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/eventbus"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTakeOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := newTestPrincipal(t, principal.Delivery)
	ownerID := kernel.NewUUID()

	unclaimed := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Cooked)
	driverID := driver.ID()
	claimed, err := order.RestoreOrder(unclaimed.ID(), unclaimed.CustomerID(), unclaimed.RestaurantID(),
		&driverID, unclaimed.Items(), order.Cooked, time.Now().UTC())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	restRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, unclaimed.ID()).Return(unclaimed, nil).Once(),
		orderRepo.On("AssignDriver", mock.Anything, unclaimed.ID(), driver.ID()).Return(true, nil).Once(),
		orderRepo.On("Get", mock.Anything, unclaimed.ID()).Return(claimed, nil).Once(),
		uow.On("RestaurantRepository").Return(restRepo).Once(),
		restRepo.On("Get", mock.Anything, unclaimed.RestaurantID()).
			Return(newTestRestaurant(t, unclaimed.RestaurantID(), ownerID), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.MatchedBy(func(ev eventbus.Event) bool {
		return ev.Topic == eventbus.TopicOrderUpdates &&
			ev.Order.Driver() != nil && ev.Order.Driver().IsEqual(driver.ID())
	})).Once()

	cmd, err := commands.NewTakeOrderCommand(driver, unclaimed.ID())
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestTakeOrderCommandHandler_Handle_LostClaimIsConflict(t *testing.T) {
	ctx := t.Context()
	driver := newTestPrincipal(t, principal.Delivery)
	o := newTestOrder(t, kernel.NewUUID(), kernel.NewUUID(), order.Cooked)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("AssignDriver", mock.Anything, o.ID(), driver.ID()).Return(false, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	cmd, err := commands.NewTakeOrderCommand(driver, o.ID())
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestTakeOrderCommandHandler_Handle_ForbiddenForNonDrivers(t *testing.T) {
	ctx := t.Context()

	for _, role := range []principal.Role{principal.Client, principal.Owner} {
		cmd, err := commands.NewTakeOrderCommand(newTestPrincipal(t, role), kernel.NewUUID())
		require.NoError(t, err)

		factory := new(MockUoWFactory)

		h := commands.NewTakeOrderCommandHandler(factory, new(MockEventPublisher))
		err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		factory.AssertNotCalled(t, "Create")
	}
}

func TestTakeOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewTakeOrderCommand(newTestPrincipal(t, principal.Delivery), orderID)
	require.NoError(t, err)

	h := commands.NewTakeOrderCommandHandler(factory, new(MockEventPublisher))
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
