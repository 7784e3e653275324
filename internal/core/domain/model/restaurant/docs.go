// Package restaurant provides the read-mostly catalog entities the order
// core depends on: restaurants (tenants with an owning principal and
// promotion state) and dishes (menu entries with a base price and an option
// catalog of flat extras or priced choices).
//
// The order core never edits the catalog. Dishes feed the pricing calculator
// at order creation, and the resulting item prices are locked into the order
// so later catalog changes cannot rewrite history.
package restaurant
