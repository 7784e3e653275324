package order

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDriverAlreadyAssigned is returned when a claim arrives for an order
	// whose driver reference is already set. Assignment is single-write: the
	// first successful claim wins and there is no reassignment path.
	ErrDriverAlreadyAssigned = errors.New("order already has a driver assigned")
)

// Order is the aggregate root of the order lifecycle. It carries the customer
// and restaurant references, the optional driver claim, the line items with
// their locked prices, and the status machine position.
//
// Order invariants:
//   - identifiers are valid and set at construction
//   - the total equals the sum of the items' locked prices and is non-negative
//   - status only advances along the linear transition chain
//   - a driver reference, once set, is never overwritten
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	driverID     *kernel.UUID
	items        []Item
	total        int64
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewOrder creates a Pending order for a customer at a restaurant. At least
// one item is required, and every item must carry its locked price already;
// the order total is derived from the items, never supplied by the caller.
func NewOrder(id, customerID, restaurantID kernel.UUID, items []Item) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	var total int64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total += item.Price()
	}

	if total < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order total",
			fmt.Errorf("%d is negative", total))
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		items:         items,
		total:         total,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status,
// driver claim and creation time. The total is re-derived from the items.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.driverID = driverID
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant cooking the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Driver returns the assigned driver's identifier, or nil while unclaimed.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Items returns the order's line items.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the order total in minor currency units: the sum of the
// items' locked prices.
func (o *Order) Total() int64 {
	return o.total
}

// Status returns the order's position in the lifecycle.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus advances the order to target, enforcing the one-step-forward
// rule of the status machine. Which roles may request which target is the
// access policy's concern and checked separately by the use case.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver claims the order for a driver. Exactly one claim may ever
// succeed; any claim on an already-claimed order returns
// ErrDriverAlreadyAssigned, including a repeat claim by the same driver.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	return nil
}
