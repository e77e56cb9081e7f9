// Package goquery provides the CSS-selector based implementation of
// provscan.SectionExtractor. Clinician-profile pages have no fixed schema,
// so the extractor works from best-effort text heuristics rather than a
// stable DOM contract.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/provscan"
	"golang.org/x/net/html"
)

// Ensure Extractor implements provscan.SectionExtractor at compile time.
var _ provscan.SectionExtractor = (*Extractor)(nil)

// probeKeywords identify containers holding educational biography content.
// Used only when the document has no usable body element.
var probeKeywords = []string{
	"education",
	"residency",
	"fellowship",
	"board certification",
}

// providerDetailsPattern matches class attributes like "provider-details",
// "providerDetail" or "provider__details-block".
var providerDetailsPattern = regexp.MustCompile(`(?i)provider.*detail`)

// headingSelector covers the heading levels scanned for an education
// heading. h1 is excluded: it names the provider, never a section.
const headingSelector = "h2, h3, h4, h5, h6"

// blockTags are elements whose end implies a line break in rendered text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"header": true, "footer": true, "aside": true, "main": true,
	"ul": true, "ol": true, "li": true, "dl": true, "dt": true, "dd": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "tr": true, "blockquote": true, "br": true,
}

// collectTags are the sibling elements whose text is gathered when walking
// an education section manually.
var collectTags = map[string]bool{
	"p": true, "ul": true, "ol": true, "li": true,
	"div": true, "section": true, "dl": true, "table": true,
}

// minFragmentChars filters out noise fragments (bullets, stray punctuation)
// during the sibling walk.
const minFragmentChars = 4

// Extractor locates candidate text regions in profile HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractSections parses raw HTML into named candidate regions plus a
// best-effort last-modified date. It never fails: on any parse anomaly it
// degrades to returning the raw input as full text.
func (e *Extractor) ExtractSections(rawHTML string) *provscan.Sections {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &provscan.Sections{FullText: rawHTML}
	}

	root := workingRoot(doc)

	sections := &provscan.Sections{
		FullText: blockText(root),
	}

	if heading := findEducationHeading(doc); heading != nil {
		sections.Education = educationSection(heading)
	}
	sections.ProviderDetails = providerDetails(doc)
	sections.LastModified = lastModifiedDate(doc)

	return sections
}

// workingRoot selects the node the full-page text is read from: the document
// body when present, otherwise the first container whose text mentions an
// educational-biography keyword, otherwise the whole document.
func workingRoot(doc *goquery.Document) *goquery.Selection {
	body := doc.Find("body").First()
	if body.Length() > 0 && strings.TrimSpace(body.Text()) != "" {
		return body
	}

	var container *goquery.Selection
	doc.Find("main, article, section, div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		for _, kw := range probeKeywords {
			if strings.Contains(text, kw) {
				container = s
				return false
			}
		}
		return true
	})
	if container != nil {
		return container
	}

	return doc.Selection
}

// findEducationHeading scans headings in document order. A heading whose
// text pairs "education" with "experience" or "certification" is preferred;
// otherwise the first heading merely containing "education" is accepted.
// Returns nil when no heading matches, which is not an error.
func findEducationHeading(doc *goquery.Document) *goquery.Selection {
	var preferred, fallback *goquery.Selection

	doc.Find(headingSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		if !strings.Contains(text, "education") {
			return true
		}
		if strings.Contains(text, "experience") || strings.Contains(text, "certification") {
			preferred = s
			return false
		}
		if fallback == nil {
			fallback = s
		}
		return true
	})

	if preferred != nil {
		return preferred
	}
	return fallback
}

// educationSection computes the section body from two candidates: the text
// of the heading's immediate parent container, and a manual walk of the
// heading's trailing siblings up to the next heading. The longer candidate
// wins; either heuristic can under- or over-capture depending on how the
// page nests its sections.
func educationSection(heading *goquery.Selection) string {
	parentText := blockText(heading.Parent())
	siblingText := trailingSiblingText(heading)

	if len(siblingText) > len(parentText) {
		return siblingText
	}
	return parentText
}

// trailingSiblingText walks the nodes following the heading in document
// order, stopping at the next heading, and concatenates the text of
// block-level element siblings and bare text nodes. When the heading sits in
// a wrapper element with no further siblings, the walk climbs out of the
// wrapper and continues with its siblings, since pages often put section
// content after the heading's container rather than inside it.
func trailingSiblingText(heading *goquery.Selection) string {
	if len(heading.Nodes) == 0 {
		return ""
	}

	var parts []string
	node := heading.Nodes[0]
	for {
		next := node.NextSibling
		for next == nil {
			parent := node.Parent
			if parent == nil || parent.Type != html.ElementNode || parent.Data == "body" || parent.Data == "html" {
				return strings.Join(parts, "\n")
			}
			node = parent
			next = node.NextSibling
		}
		node = next

		switch node.Type {
		case html.ElementNode:
			if isHeadingTag(node.Data) {
				return strings.Join(parts, "\n")
			}
			if !collectTags[node.Data] {
				continue
			}
			if text := collapseSpace(nodeText(node)); len(text) >= minFragmentChars {
				parts = append(parts, text)
			}
		case html.TextNode:
			if text := collapseSpace(node.Data); len(text) >= minFragmentChars {
				parts = append(parts, text)
			}
		}
	}
}

// providerDetails returns the text of the first element whose class matches
// the provider-details pattern, or "" if none exists.
func providerDetails(doc *goquery.Document) string {
	var details string
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		if providerDetailsPattern.MatchString(class) {
			details = blockText(s)
			return false
		}
		return true
	})
	return details
}

// lastModifiedDate finds a date for the page. A date-shaped token in a
// footer-like element wins; failing that, the entire document text is
// scanned against the labeled date patterns in priority order.
func lastModifiedDate(doc *goquery.Document) string {
	footer := doc.Find("footer, #footer, .footer, [class*='footer']")
	if footer.Length() > 0 {
		if date := provscan.FindDateToken(footer.Text()); date != "" {
			return date
		}
	}

	return provscan.FindLabeledDate(blockText(doc.Selection))
}

// isHeadingTag reports whether tag is one of the scanned heading levels.
func isHeadingTag(tag string) bool {
	switch tag {
	case "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// blockText renders a selection as plain text with block-level separation
// preserved as line breaks. Blank lines are dropped.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeBlockText(&sb, n)
	}

	lines := strings.Split(sb.String(), "\n")
	var out []string
	for _, line := range lines {
		if trimmed := collapseSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n")
}

func writeBlockText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeBlockText(sb, c)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteString("\n")
	}
}

// nodeText gathers all descendant text of a node.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
			return
		}
		if node.Type == html.ElementNode {
			switch node.Data {
			case "script", "style", "noscript":
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// collapseSpace trims and collapses runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
