package provscan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Prompt sizing. The high-precision sections go in first so the noisy
// full-text fallback can never push them out of the model's effective
// context window.
const (
	// MinSectionChars is the minimum length for an extracted section to be
	// worth including on its own.
	MinSectionChars = 50

	// MaxFullTextChars caps the whole-page text appended after the sections.
	MaxFullTextChars = 10000

	// MaxContentChars is the overall character budget for page content in a
	// single prompt.
	MaxContentChars = 12000
)

// FieldGuidance names one requested field and tells the model where on a
// profile page to look for it.
type FieldGuidance struct {
	Name string
	Hint string
}

// PromptFields enumerates the 15 fields requested from the model, in output
// order. Profile URL and Last Modified are never requested: the URL is known
// and the date is extracted heuristically.
var PromptFields = []FieldGuidance{
	{"Name", "Full name of the provider"},
	{"Credentials", "Professional credentials such as MD, PhD, ARNP"},
	{"Titles", "Professional titles and academic positions"},
	{"Specialty", "Medical specialty or specialties"},
	{"Locations", "Clinics and practice locations"},
	{"Areas of Clinical Practice", "Clinical practice areas"},
	{"Diseases Treated", "Diseases and conditions treated"},
	{"Languages", "Languages spoken"},
	{"Undergraduate Degree", "Undergraduate education and institution"},
	{"Medical Degree", "Medical school and degree"},
	{"Residency", "Residency training"},
	{"Fellowship", "Fellowship training"},
	{"Board Certifications", "Board certifications"},
	{"Awards", "Awards and recognition"},
	{"Other", "Other relevant information"},
}

// BuildPrompt assembles the bounded extraction request for one page.
// Ordering is deterministic: education section first, then provider details,
// then full text truncated to whatever budget remains.
func BuildPrompt(sections *Sections) string {
	var content strings.Builder

	if len(sections.Education) >= MinSectionChars {
		content.WriteString("EDUCATION, EXPERIENCE AND CERTIFICATIONS SECTION:\n")
		content.WriteString(sections.Education)
		content.WriteString("\n\n")
	}
	if len(sections.ProviderDetails) >= MinSectionChars {
		content.WriteString("PROVIDER DETAILS SECTION:\n")
		content.WriteString(sections.ProviderDetails)
		content.WriteString("\n\n")
	}

	budget := MaxContentChars - content.Len()
	if budget > MaxFullTextChars {
		budget = MaxFullTextChars
	}
	if budget > 0 {
		content.WriteString("FULL PAGE TEXT:\n")
		content.WriteString(truncate(sections.FullText, budget))
	}

	var sb strings.Builder
	sb.WriteString("Please extract the following information from this clinician profile page and return it as JSON:\n\n{\n")
	for i, f := range PromptFields {
		fmt.Fprintf(&sb, "  %q: %q", f.Name, f.Hint)
		if i < len(PromptFields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")
	sb.WriteString("Extract only the information that is present. Use an empty string if information is not available. ")
	sb.WriteString("Respond with the JSON object only, no commentary.\n\n")
	sb.WriteString("Provider profile content:\n")
	sb.WriteString(content.String())

	return sb.String()
}

// truncate cuts s to at most n bytes, backing up to a rune boundary so the
// cut never leaves an invalid UTF-8 sequence at the end.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
