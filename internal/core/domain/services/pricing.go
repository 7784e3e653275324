package services

import (
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
)

// PricingCalculator computes order item prices from the dish catalog and the
// customer's option selections. The computed price is locked onto the item at
// order creation; later catalog edits never change it.
type PricingCalculator interface {
	// ItemPrice returns the price of one order line in minor currency units:
	// the dish base price plus the extras of every matched selection.
	ItemPrice(dish *restaurant.Dish, selections []order.ItemOption) int64

	// OrderTotal sums the locked prices of the given items.
	OrderTotal(items []order.Item) int64
}

var _ PricingCalculator = pricingCalculator{}

type pricingCalculator struct{}

// NewPricingCalculator creates the stateless pricing calculator.
func NewPricingCalculator() PricingCalculator {
	return pricingCalculator{}
}

// ItemPrice starts from the dish base price and walks the selections in order.
// A selection contributes the option's flat extra when the option has one;
// otherwise the extra of the named choice, when that choice has one. Option
// and choice names are matched exactly, case-sensitively. Selections naming
// an unknown option or choice, and matches without an extra, contribute
// nothing. Extras may be negative and are applied as-is.
func (pricingCalculator) ItemPrice(dish *restaurant.Dish, selections []order.ItemOption) int64 {
	price := dish.Price()

	for _, sel := range selections {
		opt, ok := dish.FindOption(sel.Name)
		if !ok {
			continue
		}

		if opt.Extra != nil {
			price += *opt.Extra
			continue
		}

		if choice, ok := opt.FindChoice(sel.Choice); ok && choice.Extra != nil {
			price += *choice.Extra
		}
	}

	return price
}

func (pricingCalculator) OrderTotal(items []order.Item) int64 {
	var total int64
	for _, item := range items {
		total += item.Price()
	}
	return total
}
