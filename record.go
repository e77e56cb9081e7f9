package provscan

import "context"

// Record is one row of the provider inventory. Every field is a string;
// unknown values are empty strings, never omitted.
type Record struct {
	Name                string
	Credentials         string
	Titles              string
	Specialty           string
	Locations           string
	ClinicalPractice    string
	DiseasesTreated     string
	Languages           string
	UndergraduateDegree string
	MedicalDegree       string
	Residency           string
	Fellowship          string
	BoardCertifications string
	Awards              string
	Other               string
	ProfileURL          string
	LastModified        string
}

// FieldNames lists the output columns in their fixed order. The column order
// never changes regardless of the key order in an LLM response.
var FieldNames = []string{
	"Name",
	"Credentials",
	"Titles",
	"Specialty",
	"Locations",
	"Areas of Clinical Practice",
	"Diseases Treated",
	"Languages",
	"Undergraduate Degree",
	"Medical Degree",
	"Residency",
	"Fellowship",
	"Board Certifications",
	"Awards",
	"Other",
	"Profile URL",
	"Last Modified",
}

// Values returns the record's field values in FieldNames order.
func (r *Record) Values() []string {
	return []string{
		r.Name,
		r.Credentials,
		r.Titles,
		r.Specialty,
		r.Locations,
		r.ClinicalPractice,
		r.DiseasesTreated,
		r.Languages,
		r.UndergraduateDegree,
		r.MedicalDegree,
		r.Residency,
		r.Fellowship,
		r.BoardCertifications,
		r.Awards,
		r.Other,
		r.ProfileURL,
		r.LastModified,
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ProfileURL == "" {
		return Errorf(EINVALID, "record profile URL required")
	}
	return nil
}

// RecordWriter appends completed records to a persistent tabular output.
// Each append is its own unit of durability; no partial record is ever
// written.
type RecordWriter interface {
	WriteRecord(ctx context.Context, rec *Record) error
}

// RecordService stores records in a queryable inventory.
type RecordService interface {
	// CreateRecord inserts a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByURL retrieves the most recent record for a profile URL.
	// Returns ENOTFOUND if no record exists.
	FindRecordByURL(ctx context.Context, url string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ProfileURL *string

	Offset int
	Limit  int
}
