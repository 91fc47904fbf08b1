// Package delivery defines the contract every transport adapter fulfils.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker loop) managed
// by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
