package commands

import (
	"errors"
	"time"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrExpirePromotionsCommandIsNotConstructed = errors.New(
	"ExpirePromotionsCommand must be created via NewExpirePromotionsCommand constructor",
)

// ExpirePromotionsCommand represents a scheduled request to demote every
// restaurant whose paid promotion window has ended. It is issued by the
// scheduler, not by a principal.
type ExpirePromotionsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpirePromotionsCommand creates a command to expire promotions as of
// the given moment.
func NewExpirePromotionsCommand(now time.Time) (ExpirePromotionsCommand, error) {
	if now.IsZero() {
		return ExpirePromotionsCommand{}, errs.NewValueIsRequiredError("now")
	}

	return ExpirePromotionsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePromotionsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePromotionsCommandIsNotConstructed)
}

// Now returns the moment promotions are evaluated against.
func (c ExpirePromotionsCommand) Now() time.Time {
	return c.now
}
