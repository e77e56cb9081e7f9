package provscan

// Sections holds the candidate text regions located on a single profile
// page. Created fresh per fetched page, consumed by the prompt composer and
// the reconciler, then discarded — never persisted.
type Sections struct {
	// Education is the text of the education/experience section, if a
	// matching heading was found. Empty otherwise.
	Education string

	// ProviderDetails is the text of an element whose class matches a
	// provider-details pattern, if present.
	ProviderDetails string

	// FullText is the whole-page text with block-level separation preserved
	// as line breaks. Always populated.
	FullText string

	// LastModified is a best-effort date string found near a footer or a
	// "last modified" style label. Empty when nothing date-shaped was found,
	// which is not an error.
	LastModified string
}

// SectionExtractor locates the semantically relevant regions of a raw HTML
// document. Implementations never fail: on any parse anomaly they degrade to
// returning only FullText.
type SectionExtractor interface {
	ExtractSections(html string) *Sections
}
