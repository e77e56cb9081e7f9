package provscan

import "context"

// ArchiveWriter saves a markdown copy of a fetched profile page for manual
// review. Archive failures are advisory: the pipeline logs them but never
// fails a URL over one.
type ArchiveWriter interface {
	SavePage(ctx context.Context, url string, markdown string) error
}
