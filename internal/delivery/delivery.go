// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a servable transport (HTTP API, worker push endpoint).
// Implementations register an fx OnStop hook for graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
