// Package trafilatura extracts main page text from profile HTML, used when
// heuristic section extraction is disabled.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/provscan"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements provscan.ContentExtractor at compile time.
var _ provscan.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the main content as plain text,
// with navigation and footer boilerplate removed.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", provscan.Errorf(provscan.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}
