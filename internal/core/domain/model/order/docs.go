// Package order provides the Order aggregate and its supporting value
// objects: line items with prices locked at creation time, option selections
// stored verbatim, and the linear status machine
// Pending -> Cooking -> Cooked -> PickedUp -> Delivered.
//
// Key business rules:
//   - totals are derived from the items' locked prices, never supplied
//   - status advances exactly one step at a time; Delivered is terminal
//   - the driver claim is single-write: the first claim wins, no reassignment
//
// Role-based rules (who may advance which status, who may see an order) live
// in the domain services layer, not here.
package order
