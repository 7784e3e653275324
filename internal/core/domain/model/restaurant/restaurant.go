package restaurant

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant or RestoreRestaurant factory
// functions.
var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

// Restaurant is a marketplace tenant: every order belongs to exactly one
// restaurant, and the restaurant's owner is the principal that pending-order
// events are routed to.
//
// Promotion state (promoted flag plus expiry) is written by the payment flow
// and cleared by the scheduled expiry job; the order core itself only reads
// the owner reference.
type Restaurant struct {
	id            kernel.UUID
	ownerID       kernel.UUID
	name          string
	promoted      bool
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant creates a restaurant with a validated id, owner and name.
// New restaurants start unpromoted.
func NewRestaurant(id, ownerID kernel.UUID, name string) (*Restaurant, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}

	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant name")
	}

	return &Restaurant{
		id:            id,
		ownerID:       ownerID,
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence, including its
// promotion state.
func RestoreRestaurant(id, ownerID kernel.UUID, name string, promoted bool, promotedUntil *time.Time) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name)
	if err != nil {
		return nil, err
	}

	r.promoted = promoted
	r.promotedUntil = promotedUntil
	return r, nil
}

// Validate ensures the restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning principal.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// IsPromoted reports whether the restaurant currently holds a paid promotion.
func (r *Restaurant) IsPromoted() bool {
	return r.promoted
}

// PromotedUntil returns the promotion expiry, or nil when unpromoted.
func (r *Restaurant) PromotedUntil() *time.Time {
	return r.promotedUntil
}

// Promote marks the restaurant as promoted until the given time.
func (r *Restaurant) Promote(until time.Time) {
	r.promoted = true
	r.promotedUntil = &until
}

// Demote clears the promotion state. Called by the expiry job once
// PromotedUntil has passed.
func (r *Restaurant) Demote() {
	r.promoted = false
	r.promotedUntil = nil
}
