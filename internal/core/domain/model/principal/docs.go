// Package principal models the authenticated actor behind every request to
// the order core: a unique identifier plus one of the marketplace roles
// (Client, Owner, Delivery).
//
// The Any wildcard role exists only for declarative role tables and
// subscription predicates; an authenticated principal never carries it.
package principal
