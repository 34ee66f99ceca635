// Package lifecycle defines shared timeouts for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook.
const DefaultTimeout = 10 * time.Second
