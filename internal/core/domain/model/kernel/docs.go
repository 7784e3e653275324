// Package kernel provides core domain primitives shared across the domain
// model. It currently contains the UUID value object used as the identifier
// type for every entity and aggregate.
//
// Primitives in this package are immutable, validate themselves, and are safe
// for concurrent use.
package kernel
