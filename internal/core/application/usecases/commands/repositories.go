// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: role gate, validation, transaction
// management, persistence, and event publication after commit.
package commands

import (
	"context"

	"eats/internal/core/ports"
	"eats/internal/eventbus"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository
	// within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DishRepoFactory provides access to the dish catalog within a
	// transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// RestaurantUoW manages transactions for restaurant-only operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// UoW manages transactions spanning orders, restaurants and the dish
	// catalog. Order commands read the restaurant for its owner reference,
	// so even single-aggregate writes run under this unit of work.
	UoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)

// EventPublisher publishes order lifecycle events. Handlers publish only
// after a successful commit, and delivery is fire-and-forget: subscriber
// failures never surface to the command.
type EventPublisher interface {
	Publish(ev eventbus.Event)
}
