package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/provscan/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_Wait(t *testing.T) {
	t.Parallel()

	t.Run("spaces requests by the interval", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewPacer(50 * time.Millisecond)
		ctx := context.Background()

		start := time.Now()
		for range 3 {
			require.NoError(t, p.Wait(ctx))
		}

		// First wait is immediate; the next two each pay the interval.
		assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("zero interval disables pacing", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewPacer(0)
		ctx := context.Background()

		start := time.Now()
		for range 100 {
			require.NoError(t, p.Wait(ctx))
		}

		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("returns error when the context is canceled", func(t *testing.T) {
		t.Parallel()

		p := pipeline.NewPacer(time.Hour)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, p.Wait(ctx)) // consume the initial token
		cancel()

		err := p.Wait(ctx)
		require.Error(t, err)
	})
}
