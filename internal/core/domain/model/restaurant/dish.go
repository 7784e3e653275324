package restaurant

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrDishIsNotConstructed is returned when a Dish instance was not created
// through the NewDish or RestoreDish factory functions.
var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish constructor")

// DishChoice is a single selectable choice inside a dish option, optionally
// carrying its own extra price in minor currency units.
type DishChoice struct {
	Name  string
	Extra *int64
}

// DishOption describes a configurable aspect of a dish. An option carries
// either a flat Extra or a list of Choices; the pricing calculator tolerates
// both shapes as well as their absence, so the catalog is free to mix them.
type DishOption struct {
	Name    string
	Extra   *int64
	Choices []DishChoice
}

// Dish is a menu entry owned by a restaurant. The order core only ever reads
// dishes: the catalog is maintained elsewhere, and order items lock their
// price at creation time so later catalog edits never change history.
type Dish struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        int64
	options      []DishOption

	isConstructed bool
}

// NewDish creates a dish with a validated id, owning restaurant, name and a
// non-negative base price in minor currency units.
func NewDish(id, restaurantID kernel.UUID, name string, price int64, options []DishOption) (*Dish, error) {
	if err := errors.Join(
		id.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("dish name")
	}

	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("dish price",
			fmt.Errorf("%d is negative", price))
	}

	return &Dish{
		id:            id,
		restaurantID:  restaurantID,
		name:          name,
		price:         price,
		options:       options,
		isConstructed: true,
	}, nil
}

// RestoreDish reconstructs a dish from persistence. It applies the same
// validation as NewDish.
func RestoreDish(id, restaurantID kernel.UUID, name string, price int64, options []DishOption) (*Dish, error) {
	return NewDish(id, restaurantID, name, price, options)
}

// Validate ensures the dish was created through a constructor.
func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

// ID returns the dish's unique identifier.
func (d *Dish) ID() kernel.UUID {
	return d.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (d *Dish) RestaurantID() kernel.UUID {
	return d.restaurantID
}

// Name returns the dish's display name.
func (d *Dish) Name() string {
	return d.name
}

// Price returns the base price in minor currency units.
func (d *Dish) Price() int64 {
	return d.price
}

// Options returns the dish's option catalog.
func (d *Dish) Options() []DishOption {
	return d.options
}

// FindOption looks up an option by exact, case-sensitive name.
func (d *Dish) FindOption(name string) (DishOption, bool) {
	for _, opt := range d.options {
		if opt.Name == name {
			return opt, true
		}
	}
	return DishOption{}, false
}

// FindChoice looks up a choice of this option by exact, case-sensitive name.
func (o DishOption) FindChoice(name string) (DishChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return DishChoice{}, false
}
