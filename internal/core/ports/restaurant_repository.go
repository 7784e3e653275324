package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// GetPromotedExpired retrieves every restaurant still flagged as promoted
	// whose promotion window ended at or before the given moment.
	GetPromotedExpired(ctx context.Context, now time.Time) ([]*restaurant.Restaurant, error)
}

// DishRepository defines the read-only persistence contract for the dish
// catalog. The order core prices against dishes but never edits them.
type DishRepository interface {
	// Get retrieves a dish by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such dish exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)
}
