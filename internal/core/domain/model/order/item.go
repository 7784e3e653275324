package order

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemOption records one option selection made by the customer: the option
// name and, for options priced per choice, the chosen choice name. An empty
// Choice means the selection carries no choice.
//
// Selections are stored verbatim on the item. They are matched against the
// dish catalog only once, at pricing time, so later catalog edits cannot
// retroactively change what was ordered.
type ItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// Item is a single line of an order: a dish reference, the customer's option
// selections, and the price locked at creation time. Items are immutable once
// the order is created.
type Item struct {
	dishID  kernel.UUID
	price   int64
	options []ItemOption

	isConstructed bool
}

// NewItem creates an order item with its locked price in minor currency
// units. The price is accepted as computed by the pricing calculator,
// including results lowered by negative extras.
func NewItem(dishID kernel.UUID, price int64, options []ItemOption) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		dishID:        dishID,
		price:         price,
		options:       options,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// DishID returns the identifier of the referenced dish.
func (i Item) DishID() kernel.UUID {
	return i.dishID
}

// Price returns the locked price in minor currency units.
func (i Item) Price() int64 {
	return i.price
}

// Options returns the customer's option selections.
func (i Item) Options() []ItemOption {
	return i.options
}
