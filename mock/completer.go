package mock

import (
	"context"

	"github.com/fwojciec/provscan"
)

var _ provscan.Completer = (*Completer)(nil)

// Completer is a mock implementation of provscan.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}
