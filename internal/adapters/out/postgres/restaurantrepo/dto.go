// Package restaurantrepo provides data transfer objects and mapping
// functions for restaurant and dish persistence. Restaurants carry the owner
// reference and promotion state; dishes carry the option catalog the pricing
// calculator matches selections against.
package restaurantrepo

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant
// aggregates.
type RestaurantDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Promoted      bool `gorm:"index"`
	PromotedUntil *time.Time
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO represents the database structure for persisting dishes. The
// option catalog is stored as JSON; its shape only matters to the pricing
// calculator, never to SQL.
type DishDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        int64
	Options      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for dish entities.
func (DishDTO) TableName() string {
	return "dishes"
}

// fromDomain converts a restaurant aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:            aggregate.ID().Bytes(),
		OwnerID:       aggregate.OwnerID().Bytes(),
		Name:          aggregate.Name(),
		Promoted:      aggregate.IsPromoted(),
		PromotedUntil: aggregate.PromotedUntil(),
	}
}

// toDomain converts a database DTO to a restaurant aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, ownerID, dto.Name, dto.Promoted, dto.PromotedUntil)
}

// dishFromDomain converts a dish to its database representation.
func dishFromDomain(dish *restaurant.Dish) (DishDTO, error) {
	options, err := json.Marshal(dish.Options())
	if err != nil {
		return DishDTO{}, err
	}

	return DishDTO{
		ID:           dish.ID().Bytes(),
		RestaurantID: dish.RestaurantID().Bytes(),
		Name:         dish.Name(),
		Price:        dish.Price(),
		Options:      options,
	}, nil
}

// dishToDomain converts a database DTO to a dish.
func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var options []restaurant.DishOption
	if len(dto.Options) > 0 {
		if err = json.Unmarshal(dto.Options, &options); err != nil {
			return nil, err
		}
	}

	return restaurant.RestoreDish(id, restaurantID, dto.Name, dto.Price, options)
}
