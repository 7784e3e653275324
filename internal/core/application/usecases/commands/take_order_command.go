package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents a driver's request to claim an order for
// delivery.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command to claim an order. Validates the
// principal and the order identifier.
func NewTakeOrderCommand(p principal.Principal, orderID kernel.UUID) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(p),
		cmd.setOrderID(orderID),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// Principal returns the requesting principal.
func (c TakeOrderCommand) Principal() principal.Principal {
	return c.principal
}

// OrderID returns the identifier of the order being claimed.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *TakeOrderCommand) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.principal = p
	return nil
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
