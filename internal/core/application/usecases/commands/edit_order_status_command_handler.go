package commands

import (
	"context"

	"eats/internal/core/application/access"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/eventbus"
	"eats/internal/pkg/errs"
)

// EditOrderStatusCommandHandler handles the business logic for advancing an
// order through its lifecycle. Three gates apply in sequence: the principal
// must be a party to the order, the principal's role must own the requested
// transition, and the transition must be the next step of the status machine.
// After the commit the change is announced on the update feed, and a newly
// cooked order additionally on the driver feed.
type EditOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.AccessPolicy
	publisher  EventPublisher
}

// NewEditOrderStatusCommandHandler creates a handler for status edits.
func NewEditOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.AccessPolicy,
	publisher EventPublisher,
) EditOrderStatusCommandHandler {
	return EditOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		publisher:  publisher,
	}
}

// Handle processes the status edit command. An illegal transition for the
// order's current status is a conflict, not a permission failure: the caller
// had the right to try, the order state just moved on.
func (h *EditOrderStatusCommandHandler) Handle(ctx context.Context, cmd EditOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !access.Allowed(access.EditOrderStatus, cmd.Principal().Role()) {
		return errs.NewPermissionDeniedError(string(access.EditOrderStatus))
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errs.NewStorageUnavailableError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return wrapStorageErr("get order", err)
	}

	rest, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return wrapStorageErr("get restaurant", err)
	}

	orderAccess := services.OrderAccess{
		CustomerID: o.CustomerID(),
		DriverID:   o.Driver(),
		OwnerID:    rest.OwnerID(),
	}
	if !h.policy.CanView(cmd.Principal(), orderAccess) {
		return errs.NewPermissionDeniedError(string(access.EditOrderStatus))
	}

	if !h.policy.CanTransition(cmd.Principal().Role(), cmd.Target()) {
		return errs.NewPermissionDeniedError(string(access.EditOrderStatus))
	}

	if err = o.ChangeStatus(cmd.Target()); err != nil {
		return errs.NewConflictErrorWithCause("order status", err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return wrapStorageErr("update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return errs.NewStorageUnavailableError("commit", err)
	}

	if cmd.Target() == order.Cooked {
		h.publisher.Publish(eventbus.Event{
			Topic:   eventbus.TopicCookedOrders,
			Order:   o,
			OwnerID: rest.OwnerID(),
		})
	}

	h.publisher.Publish(eventbus.Event{
		Topic:   eventbus.TopicOrderUpdates,
		Order:   o,
		OwnerID: rest.OwnerID(),
	})

	return nil
}
