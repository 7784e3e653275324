package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrEditOrderStatusCommandIsNotConstructed = errors.New(
	"EditOrderStatusCommand must be created via NewEditOrderStatusCommand constructor",
)

// EditOrderStatusCommand represents a request to advance an order to a new
// lifecycle status.
type EditOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	orderID   kernel.UUID
	target    order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderStatusCommand creates a command to advance an order's status.
// Validates the principal, the order identifier and the target status.
func NewEditOrderStatusCommand(
	p principal.Principal,
	orderID kernel.UUID,
	target order.Status,
) (EditOrderStatusCommand, error) {
	cmd := EditOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(p),
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return EditOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderStatusCommandIsNotConstructed)
}

// Principal returns the requesting principal.
func (c EditOrderStatusCommand) Principal() principal.Principal {
	return c.principal
}

// OrderID returns the identifier of the order being advanced.
func (c EditOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c EditOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *EditOrderStatusCommand) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.principal = p
	return nil
}

func (c *EditOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
