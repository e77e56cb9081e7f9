package provscan

// ContentExtractor extracts the main readable text from an HTML page,
// removing boilerplate (nav, footer, sidebar, ads). It backs the degraded
// pipeline mode that skips section heuristics and sends page text straight
// to the model.
type ContentExtractor interface {
	// ExtractText processes raw HTML and returns the main content as plain
	// text.
	ExtractText(html string) (string, error)
}
