package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemRequest is one requested order line: the dish to order and the
// customer's option selections. Prices are never part of the request; they
// are computed from the catalog when the order is created.
type OrderItemRequest struct {
	DishID     kernel.UUID
	Selections []order.ItemOption
}

// CreateOrderCommand represents a customer's request to place an order at a
// restaurant.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	principal    principal.Principal
	orderID      kernel.UUID
	restaurantID kernel.UUID
	items        []OrderItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. Validates the
// requesting principal, the order and restaurant identifiers, and that at
// least one item with a valid dish reference is requested.
func NewCreateOrderCommand(
	p principal.Principal,
	orderID, restaurantID kernel.UUID,
	items []OrderItemRequest,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(p),
		cmd.setOrderID(orderID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Principal returns the requesting principal.
func (c CreateOrderCommand) Principal() principal.Principal {
	return c.principal
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.principal = p
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, item := range items {
		if err := item.DishID.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
