package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/provscan"
	"golang.org/x/time/rate"
)

var _ provscan.Pacer = (*Pacer)(nil)

// Pacer enforces a fixed interval between consecutive requests using a
// token bucket with a burst of 1, so the first request proceeds immediately.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer allowing one request per interval.
// A non-positive interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{}
	}
	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the pacing interval allows the next request.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
