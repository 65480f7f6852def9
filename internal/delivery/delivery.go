// Package delivery holds the long-running entry points started by the binary.
package delivery

import "context"

// Delivery is a long-running server or loop. Serve blocks until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
