package commands

import (
	"context"
	"fmt"

	"eats/internal/core/application/access"
	"eats/internal/eventbus"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler handles the business logic for claiming an order.
// The claim is a single conditional write: under concurrent attempts exactly
// one driver wins and every other attempt gets a conflict. After the commit
// the claim is announced on the order's update feed.
type TakeOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
}

// NewTakeOrderCommandHandler creates a handler for order claims.
func NewTakeOrderCommandHandler(uowFactory UoWFactory, publisher EventPublisher) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the claim command. Only delivery principals may claim, and
// an order may only ever be claimed once; a repeat attempt by the winner is a
// conflict like any other.
func (h *TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !access.Allowed(access.TakeOrder, cmd.Principal().Role()) {
		return errs.NewPermissionDeniedError(string(access.TakeOrder))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStorageUnavailableError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return wrapStorageErr("get order", err)
	}

	won, err := orderRepo.AssignDriver(ctx, cmd.OrderID(), cmd.Principal().ID())
	if err != nil {
		return wrapStorageErr("assign driver", err)
	}
	if !won {
		return errs.NewConflictErrorWithCause("order driver",
			fmt.Errorf("order %s already has a driver", cmd.OrderID()))
	}

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return wrapStorageErr("get order", err)
	}

	rest, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return wrapStorageErr("get restaurant", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewStorageUnavailableError("commit", err)
	}

	h.publisher.Publish(eventbus.Event{
		Topic:   eventbus.TopicOrderUpdates,
		Order:   o,
		OwnerID: rest.OwnerID(),
	})

	return nil
}
