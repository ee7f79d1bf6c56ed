// Package delivery defines the common contract for the application's serving surfaces.
package delivery

import "context"

// Delivery is implemented by every long-running serving surface (HTTP server,
// notifier worker). Serve blocks until the surface stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
