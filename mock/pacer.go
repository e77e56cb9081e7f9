package mock

import (
	"context"

	"github.com/fwojciec/provscan"
)

var _ provscan.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of provscan.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	if p.WaitFn == nil {
		return nil
	}
	return p.WaitFn(ctx)
}
