package provscan

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Text is a string that tolerates non-string JSON values. Models asked for
// string fields still occasionally answer with numbers, booleans, or arrays;
// the inventory is not the place to reject those, so scalars are stringified
// and arrays of scalars are joined with "; ".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Text(coerceString(v))
	return nil
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := coerceString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "; ")
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// extraction is the model's answer decoded leniently. Fields absent from the
// JSON stay zero and default to empty strings in the record — the defaulting
// rule is applied exactly once, here.
type extraction struct {
	Name                Text `json:"Name"`
	Credentials         Text `json:"Credentials"`
	Titles              Text `json:"Titles"`
	Specialty           Text `json:"Specialty"`
	Locations           Text `json:"Locations"`
	ClinicalPractice    Text `json:"Areas of Clinical Practice"`
	DiseasesTreated     Text `json:"Diseases Treated"`
	Languages           Text `json:"Languages"`
	UndergraduateDegree Text `json:"Undergraduate Degree"`
	MedicalDegree       Text `json:"Medical Degree"`
	Residency           Text `json:"Residency"`
	Fellowship          Text `json:"Fellowship"`
	BoardCertifications Text `json:"Board Certifications"`
	Awards              Text `json:"Awards"`
	Other               Text `json:"Other"`
	LastModified        Text `json:"Last Modified"`
}

// ExtractJSON locates the JSON object embedded in completion text by
// delimiter span: first '{' to last '}'. Returns EINVALID when no valid span
// exists.
func ExtractJSON(completion string) (string, error) {
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start < 0 || end <= start {
		return "", Errorf(EINVALID, "no JSON object found in completion")
	}
	return completion[start : end+1], nil
}

// Reconcile merges the model's completion with the heuristic signals for one
// URL and returns the finished record.
//
// Precedence: the profile URL is always the input URL, never the model's.
// A heuristic date wins over the model's Last Modified because footer and
// date-label extraction is higher precision than the model's guess for this
// structurally-anchored field.
func Reconcile(url string, heuristicDate string, completion string) (*Record, error) {
	raw, err := ExtractJSON(completion)
	if err != nil {
		return nil, err
	}

	var ext extraction
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		return nil, Errorf(EINVALID, "invalid JSON in completion: %v", err)
	}

	lastModified := string(ext.LastModified)
	if heuristicDate != "" {
		lastModified = heuristicDate
	}

	return &Record{
		Name:                string(ext.Name),
		Credentials:         string(ext.Credentials),
		Titles:              string(ext.Titles),
		Specialty:           string(ext.Specialty),
		Locations:           string(ext.Locations),
		ClinicalPractice:    string(ext.ClinicalPractice),
		DiseasesTreated:     string(ext.DiseasesTreated),
		Languages:           string(ext.Languages),
		UndergraduateDegree: string(ext.UndergraduateDegree),
		MedicalDegree:       string(ext.MedicalDegree),
		Residency:           string(ext.Residency),
		Fellowship:          string(ext.Fellowship),
		BoardCertifications: string(ext.BoardCertifications),
		Awards:              string(ext.Awards),
		Other:               string(ext.Other),
		ProfileURL:          url,
		LastModified:        lastModified,
	}, nil
}
