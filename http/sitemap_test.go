package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/fwojciec/provscan"
	provhttp "github.com/fwojciec/provscan/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("parses a urlset", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/providers/a</loc></url>
  <url><loc>https://example.com/providers/b</loc></url>
</urlset>`)
		}))
		defer srv.Close()

		s := provhttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/providers/a",
			"https://example.com/providers/b",
		}, urls)
	})

	t.Run("resolves a sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		srv := httptest.NewServer(mux)
		defer srv.Close()

		mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%s/providers.xml</loc></sitemap>
  <sitemap><loc>%s/locations.xml</loc></sitemap>
</sitemapindex>`, srv.URL, srv.URL)
		})
		mux.HandleFunc("/providers.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset><url><loc>https://example.com/providers/a</loc></url></urlset>`)
		})
		mux.HandleFunc("/locations.xml", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset><url><loc>https://example.com/locations/x</loc></url></urlset>`)
		})

		s := provhttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/providers/a",
			"https://example.com/locations/x",
		}, urls)
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset>
  <url><loc>https://example.com/providers/a</loc></url>
  <url><loc>https://example.com/news/article</loc></url>
</urlset>`)
		}))
		defer srv.Close()

		filter := &provscan.URLFilter{
			Include: []*regexp.Regexp{regexp.MustCompile(`/providers/`)},
		}

		s := provhttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", filter)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/providers/a"}, urls)
	})

	t.Run("deduplicates URLs preserving first occurrence", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<urlset>
  <url><loc>https://example.com/providers/a</loc></url>
  <url><loc>https://example.com/providers/b</loc></url>
  <url><loc>https://example.com/providers/a</loc></url>
</urlset>`)
		}))
		defer srv.Close()

		s := provhttp.NewSitemapService(nil)
		urls, err := s.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/providers/a",
			"https://example.com/providers/b",
		}, urls)
	})

	t.Run("propagates HTTP errors", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer srv.Close()

		s := provhttp.NewSitemapService(nil)
		_, err := s.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", nil)

		require.Error(t, err)
	})
}
