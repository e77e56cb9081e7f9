package provscan

import "context"

// Fetcher retrieves raw HTML from profile URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// profiles.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its HTML.
	// The context controls timeout and cancellation.
	// Transport and HTTP-status errors return EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
