package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
)

// OrderAccess carries the party references of one order, resolved by the
// caller. OwnerID is the owner of the restaurant the order was placed at;
// DriverID is nil while the order is unclaimed.
type OrderAccess struct {
	CustomerID kernel.UUID
	DriverID   *kernel.UUID
	OwnerID    kernel.UUID
}

// AccessPolicy decides which principal may see an order and which role may
// request a given status transition. Both checks are identity checks only;
// whether the transition itself is legal is the status machine's concern, and
// both must pass for a status edit to succeed.
type AccessPolicy interface {
	// CanView reports whether the principal is one of the order's parties:
	// the ordering customer, the assigned driver, or the restaurant owner.
	CanView(p principal.Principal, access OrderAccess) bool

	// CanTransition reports whether the role may request the target status.
	// Owners drive the kitchen side (Cooking, Cooked), drivers the delivery
	// side (PickedUp, Delivered). Clients may not edit status at all.
	CanTransition(role principal.Role, target order.Status) bool
}

var _ AccessPolicy = accessPolicy{}

type accessPolicy struct{}

// NewAccessPolicy creates the stateless order access policy.
func NewAccessPolicy() AccessPolicy {
	return accessPolicy{}
}

func (accessPolicy) CanView(p principal.Principal, access OrderAccess) bool {
	switch p.Role() {
	case principal.Client:
		return p.ID().IsEqual(access.CustomerID)
	case principal.Owner:
		return p.ID().IsEqual(access.OwnerID)
	case principal.Delivery:
		return access.DriverID != nil && p.ID().IsEqual(*access.DriverID)
	default:
		return false
	}
}

func (accessPolicy) CanTransition(role principal.Role, target order.Status) bool {
	switch role {
	case principal.Owner:
		return target == order.Cooking || target == order.Cooked
	case principal.Delivery:
		return target == order.PickedUp || target == order.Delivered
	default:
		return false
	}
}
