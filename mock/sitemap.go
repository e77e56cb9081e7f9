package mock

import (
	"context"

	"github.com/fwojciec/provscan"
)

var _ provscan.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of provscan.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, sitemapURL string, filter *provscan.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string, filter *provscan.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, sitemapURL, filter)
}
