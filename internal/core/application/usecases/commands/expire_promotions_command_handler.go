package commands

import (
	"context"

	"eats/internal/pkg/errs"
)

// ExpirePromotionsCommandHandler handles the scheduled demotion of
// restaurants whose promotion window has ended. The whole sweep runs in one
// transaction.
type ExpirePromotionsCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewExpirePromotionsCommandHandler creates a handler for promotion expiry
// sweeps.
func NewExpirePromotionsCommandHandler(uowFactory RestaurantUoWFactory) ExpirePromotionsCommandHandler {
	return ExpirePromotionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep and returns the number of restaurants
// demoted.
func (h *ExpirePromotionsCommandHandler) Handle(ctx context.Context, cmd ExpirePromotionsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.NewStorageUnavailableError("begin", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restRepo := uow.RestaurantRepository()
	expired, err := restRepo.GetPromotedExpired(ctx, cmd.Now())
	if err != nil {
		return 0, wrapStorageErr("get expired promotions", err)
	}

	for _, rest := range expired {
		rest.Demote()
		if err = restRepo.Update(ctx, rest); err != nil {
			return 0, wrapStorageErr("update restaurant", err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewStorageUnavailableError("commit", err)
	}

	return len(expired), nil
}
