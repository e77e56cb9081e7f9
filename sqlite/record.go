package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/provscan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ provscan.RecordService = (*RecordService)(nil)

// RecordService implements provscan.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// recordColumns is the column list shared by inserts and selects, in
// provscan.FieldNames order plus the bookkeeping columns.
const recordColumns = `name, credentials, titles, specialty, locations, clinical_practice,
	diseases_treated, languages, undergraduate_degree, medical_degree, residency,
	fellowship, board_certifications, awards, other, profile_url, last_modified`

// hashRecord computes an xxHash over all field values so re-runs can detect
// unchanged profiles.
func hashRecord(rec *provscan.Record) string {
	h := xxhash.Sum64String(strings.Join(rec.Values(), "\x1f"))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

// CreateRecord inserts a new record.
func (s *RecordService) CreateRecord(ctx context.Context, rec *provscan.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	values := rec.Values()
	args := make([]any, 0, len(values)+3)
	args = append(args, uuid.New().String())
	for _, v := range values {
		args = append(args, v)
	}
	args = append(args, hashRecord(rec), time.Now().UTC().Format(time.RFC3339))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO providers (id, `+recordColumns+`, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, args...)

	return err
}

// FindRecordByURL retrieves the most recent record for a profile URL.
func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*provscan.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM providers
		WHERE profile_url = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, url)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, provscan.Errorf(provscan.ENOTFOUND, "no record for %q", url)
	}
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// FindRecords retrieves records matching the filter, most recent first.
func (s *RecordService) FindRecords(ctx context.Context, filter provscan.RecordFilter) ([]*provscan.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM providers WHERE 1=1")

	if filter.ProfileURL != nil {
		query.WriteString(" AND profile_url = ?")
		args = append(args, *filter.ProfileURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*provscan.Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// scanRecord scans one providers row into a Record.
func scanRecord(scan func(dest ...any) error) (*provscan.Record, error) {
	var rec provscan.Record
	err := scan(
		&rec.Name, &rec.Credentials, &rec.Titles, &rec.Specialty, &rec.Locations,
		&rec.ClinicalPractice, &rec.DiseasesTreated, &rec.Languages,
		&rec.UndergraduateDegree, &rec.MedicalDegree, &rec.Residency,
		&rec.Fellowship, &rec.BoardCertifications, &rec.Awards, &rec.Other,
		&rec.ProfileURL, &rec.LastModified,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
