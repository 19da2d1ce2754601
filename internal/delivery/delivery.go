// Package delivery defines the transport-facing contracts served by the
// composition root.
package delivery

import "context"

// Delivery is a server started by the composition root and stopped through
// its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
