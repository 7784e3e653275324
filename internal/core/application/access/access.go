// Package access declares which roles may invoke which use case. The table
// mirrors the transport-facing surface: every command and query handler
// consults it before doing any work, so a request from the wrong role fails
// fast and uniformly.
package access

import (
	"eats/internal/core/domain/model/principal"
)

// Operation names one use case of the order core.
type Operation string

const (
	CreateOrder       Operation = "createOrder"
	GetOrders         Operation = "getOrders"
	GetOrder          Operation = "getOrder"
	EditOrderStatus   Operation = "editOrderStatus"
	TakeOrder         Operation = "takeOrder"
	WatchOrder        Operation = "watchOrder"
	PendingOrdersFeed Operation = "pendingOrdersFeed"
	CookedOrdersFeed  Operation = "cookedOrdersFeed"
)

// allowedRoles is the static operation gate. principal.Any admits every
// valid role; operations absent from the table admit nobody.
func allowedRoles() map[Operation][]principal.Role {
	return map[Operation][]principal.Role{
		CreateOrder:       {principal.Client},
		GetOrders:         {principal.Any},
		GetOrder:          {principal.Any},
		EditOrderStatus:   {principal.Any},
		TakeOrder:         {principal.Delivery},
		WatchOrder:        {principal.Any},
		PendingOrdersFeed: {principal.Owner},
		CookedOrdersFeed:  {principal.Delivery},
	}
}

// Allowed reports whether the role may invoke the operation. Per-order party
// checks and per-transition role checks are layered on top by the handlers;
// this gate only filters out roles the operation never admits.
func Allowed(op Operation, role principal.Role) bool {
	if role.Validate() != nil {
		return false
	}

	for _, allowed := range allowedRoles()[op] {
		if allowed == principal.Any || allowed == role {
			return true
		}
	}
	return false
}
