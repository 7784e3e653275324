// Package http is the inbound HTTP adapter. It implements the generated
// ServerInterface, translating HTTP requests into commands and queries and
// mapping error kinds back to status codes.
//
// The adapter expects an upstream gateway to authenticate callers and forward
// their identity in the X-User-Id and X-User-Role headers; PrincipalMiddleware
// turns those headers into a domain Principal.
//
// The three streaming endpoints (order updates, pending orders, cooked
// orders) are served as server-sent events backed by the in-process event
// bus. A stream carries only events published after the client connected.
package http
