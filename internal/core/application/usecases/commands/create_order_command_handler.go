package commands

import (
	"context"
	"fmt"

	"eats/internal/core/application/access"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/eventbus"
	"eats/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for placing an order.
// Prices every requested line against the dish catalog, locks the computed
// prices onto the order, and persists the whole order atomically. After the
// commit it announces the new order to restaurant owners watching their
// pending queue.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	pricing    services.PricingCalculator
	publisher  EventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	pricing services.PricingCalculator,
	publisher EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		publisher:  publisher,
	}
}

// Handle processes the order placement command. Only clients may place
// orders. The restaurant and every referenced dish must exist; either
// everything is persisted or nothing is.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !access.Allowed(access.CreateOrder, cmd.Principal().Role()) {
		return errs.NewPermissionDeniedError(string(access.CreateOrder))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStorageUnavailableError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return wrapStorageErr("get restaurant", err)
	}

	dishRepo := uow.DishRepository()
	items := make([]order.Item, 0, len(cmd.Items()))
	for _, req := range cmd.Items() {
		dish, err := dishRepo.Get(ctx, req.DishID)
		if err != nil {
			return wrapStorageErr("get dish", err)
		}

		if !dish.RestaurantID().IsEqual(cmd.RestaurantID()) {
			return errs.NewValueIsInvalidErrorWithCause("dish",
				fmt.Errorf("dish %s is not on the restaurant's menu", dish.ID()))
		}

		item, err := order.NewItem(dish.ID(), h.pricing.ItemPrice(dish, req.Selections), req.Selections)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.Principal().ID(), cmd.RestaurantID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return wrapStorageErr("add order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewStorageUnavailableError("commit", err)
	}

	h.publisher.Publish(eventbus.Event{
		Topic:   eventbus.TopicPendingOrders,
		Order:   newOrder,
		OwnerID: rest.OwnerID(),
	})

	return nil
}
