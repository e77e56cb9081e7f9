// Package http provides the HTTP-based implementation of provscan.Fetcher
// for profile pages that render server-side, plus sitemap-based URL
// discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/provscan"
)

// DefaultFetchTimeout is the default timeout for profile page requests.
// Profile sites behind CDNs can be slow on cold pages.
const DefaultFetchTimeout = 30 * time.Second

// userAgent identifies the inventory tool to the sites it scans.
const userAgent = "provscan/1.0 (+https://github.com/fwojciec/provscan)"

// Ensure Fetcher implements provscan.Fetcher at compile time.
var _ provscan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves profile HTML over plain HTTP. It does not execute
// JavaScript; use the rod fetcher for client-rendered profiles.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML document at the given URL. Transport errors and
// non-2xx statuses both surface as EUNAVAILABLE so the pipeline treats them
// uniformly as a fetch failure for that URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", provscan.Errorf(provscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", provscan.Errorf(provscan.EUNAVAILABLE, "fetch %s: reading body: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
