package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/provscan"
	"github.com/fwojciec/provscan/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(openDB(t))
		ctx := context.Background()

		rec := &provscan.Record{
			Name:                "Dr. Jane Smith",
			Credentials:         "MD, PhD",
			Titles:              "Professor of Medicine",
			Specialty:           "Medical Oncology",
			Locations:           "Seattle, WA",
			ClinicalPractice:    "Breast cancer",
			DiseasesTreated:     "Breast cancer; sarcoma",
			Languages:           "English; Spanish",
			UndergraduateDegree: "BS, Reed College",
			MedicalDegree:       "MD, University of Washington",
			Residency:           "Internal Medicine, UW Medical Center",
			Fellowship:          "Oncology, Fred Hutchinson",
			BoardCertifications: "Internal Medicine; Medical Oncology",
			Awards:              "Top Doctor 2023",
			Other:               "Research interests in immunotherapy",
			ProfileURL:          "https://example.com/providers/jane-smith",
			LastModified:        "2024-07-25",
		}
		require.NoError(t, s.CreateRecord(ctx, rec))

		got, err := s.FindRecordByURL(ctx, rec.ProfileURL)
		require.NoError(t, err)
		assert.Equal(t, rec, got)
	})

	t.Run("rejects a record without a profile URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(openDB(t))

		err := s.CreateRecord(context.Background(), &provscan.Record{Name: "Dr. Smith"})

		require.Error(t, err)
		assert.Equal(t, provscan.EINVALID, provscan.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(openDB(t))

		_, err := s.FindRecordByURL(context.Background(), "https://example.com/unknown")

		require.Error(t, err)
		assert.Equal(t, provscan.ENOTFOUND, provscan.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	t.Run("filters by profile URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(openDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateRecord(ctx, &provscan.Record{ProfileURL: "https://example.com/a", Name: "A"}))
		require.NoError(t, s.CreateRecord(ctx, &provscan.Record{ProfileURL: "https://example.com/b", Name: "B"}))

		url := "https://example.com/b"
		recs, err := s.FindRecords(ctx, provscan.RecordFilter{ProfileURL: &url})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "B", recs[0].Name)
	})

	t.Run("applies the limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewRecordService(openDB(t))
		ctx := context.Background()

		for _, u := range []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"} {
			require.NoError(t, s.CreateRecord(ctx, &provscan.Record{ProfileURL: u}))
		}

		recs, err := s.FindRecords(ctx, provscan.RecordFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})
}
