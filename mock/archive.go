package mock

import (
	"context"

	"github.com/fwojciec/provscan"
)

var _ provscan.ArchiveWriter = (*ArchiveWriter)(nil)

// ArchiveWriter is a mock implementation of provscan.ArchiveWriter.
type ArchiveWriter struct {
	SavePageFn func(ctx context.Context, url string, markdown string) error
}

func (w *ArchiveWriter) SavePage(ctx context.Context, url string, markdown string) error {
	return w.SavePageFn(ctx, url, markdown)
}
