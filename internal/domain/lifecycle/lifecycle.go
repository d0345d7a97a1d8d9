// Package lifecycle holds shared values for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may block.
const DefaultTimeout = 15 * time.Second
