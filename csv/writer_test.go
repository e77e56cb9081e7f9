package csv_test

import (
	"context"
	encsv "encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/provscan"
	provcsv "github.com/fwojciec/provscan/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes the header once at creation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		_, err := provcsv.NewWriter(path)
		require.NoError(t, err)

		rows := readCSV(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, provscan.FieldNames, rows[0])
	})

	t.Run("appends one row per record in column order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		w, err := provcsv.NewWriter(path)
		require.NoError(t, err)

		rec := &provscan.Record{
			Name:         "Dr. Jane Smith",
			Credentials:  "MD",
			ProfileURL:   "https://example.com/providers/jane-smith",
			LastModified: "2024-07-25",
		}
		require.NoError(t, w.WriteRecord(context.Background(), rec))

		rows := readCSV(t, path)
		require.Len(t, rows, 2)
		require.Len(t, rows[1], 17)
		assert.Equal(t, "Dr. Jane Smith", rows[1][0])
		assert.Equal(t, "MD", rows[1][1])
		assert.Equal(t, "https://example.com/providers/jane-smith", rows[1][15])
		assert.Equal(t, "2024-07-25", rows[1][16])
	})

	t.Run("preserves append order across records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		w, err := provcsv.NewWriter(path)
		require.NoError(t, err)

		for _, u := range []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"} {
			require.NoError(t, w.WriteRecord(context.Background(), &provscan.Record{ProfileURL: u}))
		}

		rows := readCSV(t, path)
		require.Len(t, rows, 4)
		assert.Equal(t, "https://example.com/a", rows[1][15])
		assert.Equal(t, "https://example.com/b", rows[2][15])
		assert.Equal(t, "https://example.com/c", rows[3][15])
	})

	t.Run("rejects a record without a profile URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		w, err := provcsv.NewWriter(path)
		require.NoError(t, err)

		err = w.WriteRecord(context.Background(), &provscan.Record{Name: "Dr. Smith"})

		require.Error(t, err)
		assert.Equal(t, provscan.EINVALID, provscan.ErrorCode(err))
	})

	t.Run("truncates an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

		_, err := provcsv.NewWriter(path)
		require.NoError(t, err)

		rows := readCSV(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, provscan.FieldNames, rows[0])
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := encsv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
