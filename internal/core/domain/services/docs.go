// Package services holds stateless domain services that work across
// aggregates: the pricing calculator, which turns dish catalog entries and
// option selections into locked item prices, and the access policy, which
// decides party visibility and per-role status transition rights.
package services
