// Package fs provides file-based archiving of fetched profiles.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/provscan"
)

// URLToPath converts a profile URL to a relative markdown file path rooted
// at the host, so archives of multiple provider directories don't collide.
// Example: https://example.com/providers/jane-smith → example.com/providers/jane-smith.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", provscan.Errorf(provscan.EINVALID, "URL %q has no host", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case path == "":
		path = "index.md"
	case strings.HasSuffix(path, "/"):
		path += "index.md"
	default:
		path += ".md"
	}

	return filepath.Join(u.Host, path), nil
}

// Ensure Archive implements provscan.ArchiveWriter at compile time.
var _ provscan.ArchiveWriter = (*Archive)(nil)

// Archive saves markdown dossiers of fetched profiles under a base
// directory for manual review.
type Archive struct {
	baseDir string
}

// NewArchive creates a new Archive rooted at baseDir.
func NewArchive(baseDir string) *Archive {
	return &Archive{baseDir: baseDir}
}

// SavePage writes the markdown dossier for one profile, creating parent
// directories as needed. An existing dossier for the same URL is replaced.
func (a *Archive) SavePage(ctx context.Context, rawURL string, markdown string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := URLToPath(rawURL)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(a.baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(rawURL)
	b.WriteString("\ncaptured: ")
	b.WriteString(time.Now().UTC().Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(markdown)

	return os.WriteFile(fullPath, []byte(b.String()), 0644)
}
