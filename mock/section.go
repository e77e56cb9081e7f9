package mock

import "github.com/fwojciec/provscan"

var _ provscan.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of provscan.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(html string) *provscan.Sections
}

func (e *SectionExtractor) ExtractSections(html string) *provscan.Sections {
	return e.ExtractSectionsFn(html)
}
