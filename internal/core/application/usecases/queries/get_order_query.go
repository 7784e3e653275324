// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate repositories and read projections
// straight from the database, applying the same party visibility rules as
// the write side.
package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. Only a party
// to the order may read it.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. Validates the principal and
// the order identifier.
func NewGetOrderQuery(p principal.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setPrincipal(p),
		q.setOrderID(orderID),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetOrderQuery) Principal() principal.Principal {
	return q.principal
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	q.principal = p
	return nil
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderItemResponse is one order line of the detail view.
type GetOrderItemResponse struct {
	DishID     kernel.UUID
	Price      int64
	Selections []order.ItemOption
}

// GetOrderQueryResponse is the detail view of one order.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       order.Status
	Total        int64
	CreatedAt    time.Time
	Items        []GetOrderItemResponse
}
