package provscan

// Converter converts HTML to Markdown.
// Used to produce reviewable dossiers of fetched profiles.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
