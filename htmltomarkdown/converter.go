// Package htmltomarkdown converts profile HTML to Markdown for archiving.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/provscan"
)

// Ensure Converter implements provscan.Converter at compile time.
var _ provscan.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to turn profile HTML into the markdown
// body of an archive dossier.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter. The table plugin matters for
// profiles: education and certification histories are often tabular.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms profile HTML into Markdown. A page whose conversion
// yields no text at all (script-only or markup-only input) is EINVALID:
// archiving an empty dossier would hide a fetch problem.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", provscan.Errorf(provscan.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", provscan.Errorf(provscan.EINTERNAL, "converting profile HTML: %v", err)
	}

	md := strings.TrimSpace(result)
	if md == "" {
		return "", provscan.Errorf(provscan.EINVALID, "no convertible content in profile HTML")
	}

	return md, nil
}
