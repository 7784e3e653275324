package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders visible to a principal, optionally filtered
// by status. Each role sees a different slice of the order book: clients
// their own orders, drivers their claimed orders, owners the orders of their
// restaurants.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	principal principal.Principal
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a listing query. A nil status means no filter.
func NewGetOrdersQuery(p principal.Principal, status *order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setPrincipal(p); err != nil {
		return GetOrdersQuery{}, err
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetOrdersQuery) Principal() principal.Principal {
	return q.principal
}

// Status returns the status filter, or nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

func (q *GetOrdersQuery) setPrincipal(p principal.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}

	q.principal = p
	return nil
}

// GetOrdersQueryResponse is one row of the order listing.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Status       order.Status
	Total        int64
	CreatedAt    time.Time
}
