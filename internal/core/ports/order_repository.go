// Package ports defines the persistence contracts of the order core.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AssignDriver claims the order for a driver with a single conditional
	// write that only succeeds while no driver is assigned. It returns true
	// when this call won the claim and false when another driver already
	// holds it. Under concurrent claims exactly one caller sees true.
	AssignDriver(ctx context.Context, orderID, driverID kernel.UUID) (bool, error)
}
