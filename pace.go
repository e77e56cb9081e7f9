package provscan

import "context"

// Pacer enforces the fixed pause between consecutive requests.
type Pacer interface {
	// Wait blocks until the pacing interval allows the next request.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}
