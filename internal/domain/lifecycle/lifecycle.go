// Package lifecycle holds shared start/stop bounds for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of deliveries.
const DefaultTimeout = 15 * time.Second
