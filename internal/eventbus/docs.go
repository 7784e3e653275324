// Package eventbus implements the in-process publish/subscribe hub that
// fans order lifecycle notifications out to watching parties. Delivery is
// fire-and-forget: publishers never block and never observe subscriber
// failures, and subscribers only receive events published while they are
// attached.
package eventbus
