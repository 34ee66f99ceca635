// Package delivery defines the transport entry points started by each binary.
package delivery

import "context"

// Delivery is a long-running server collected through the "deliveries" fx group.
type Delivery interface {
	Serve(ctx context.Context) error
}
