package services

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/job-posting-classifier/internal/models"
)

func newTestCSVStore(t *testing.T) *CSVRecordStore {
	store := NewCSVRecordStore(filepath.Join(t.TempDir(), "data"), map[models.Destination]string{
		models.DestinationRegistrations: "user_data.csv",
		models.DestinationFeedback:      "job_posting_feedback.csv",
	})
	require.NoError(t, store.EnsureDataDir())
	return store
}

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVRecordStore_WritesHeaderOnce(t *testing.T) {
	store := newTestCSVStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, models.DestinationFeedback, []string{"Acme", "https://acme.example/1", "Yes"}))
	require.NoError(t, store.Append(ctx, models.DestinationFeedback, []string{"Globex, Inc.", "https://globex.example/2", "Unsure"}))

	path, err := store.FilePath(models.DestinationFeedback)
	require.NoError(t, err)

	rows := readCSV(t, path)
	assert.Equal(t, [][]string{
		{"Company Name", "Reference Link", "Is Real Posting"},
		{"Acme", "https://acme.example/1", "Yes"},
		{"Globex, Inc.", "https://globex.example/2", "Unsure"},
	}, rows)
}

func TestCSVRecordStore_HeaderWhenExistingFileEmpty(t *testing.T) {
	store := newTestCSVStore(t)
	path, err := store.FilePath(models.DestinationRegistrations)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, nil, 0644))

	require.NoError(t, store.Append(context.Background(), models.DestinationRegistrations, []string{"jane", "jane@example.com", "hash"}))

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Username", "Email", "Password"}, rows[0])
}

func TestCSVRecordStore_Rejects(t *testing.T) {
	store := newTestCSVStore(t)
	ctx := context.Background()

	err := store.Append(ctx, models.Destination("audit"), []string{"a"})
	assert.ErrorContains(t, err, "unknown destination")

	err = store.Append(ctx, models.DestinationFeedback, []string{"only", "two"})
	assert.ErrorContains(t, err, "want 3")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err = store.Append(cancelled, models.DestinationFeedback, []string{"a", "b", "c"})
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeRecordRepository struct {
	created []*models.Record
	err     error
}

func (f *fakeRecordRepository) Create(_ context.Context, record *models.Record) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, record)
	return nil
}

func (f *fakeRecordRepository) CountByDestination(_ context.Context, destination models.Destination) (int64, error) {
	var n int64
	for _, r := range f.created {
		if r.Destination == destination {
			n++
		}
	}
	return n, nil
}

func TestDatabaseRecordStore_Append(t *testing.T) {
	repo := &fakeRecordRepository{}
	store := NewDatabaseRecordStore(repo)

	err := store.Append(context.Background(), models.DestinationFeedback, []string{"Acme", "https://acme.example/1", "No"})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	rec := repo.created[0]
	assert.NotEmpty(t, rec.ID.String())
	assert.Equal(t, models.DestinationFeedback, rec.Destination)
	assert.Equal(t, []string{"Acme", "https://acme.example/1", "No"}, []string(rec.Fields))
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestDatabaseRecordStore_Errors(t *testing.T) {
	repo := &fakeRecordRepository{err: errors.New("connection reset")}
	store := NewDatabaseRecordStore(repo)

	err := store.Append(context.Background(), models.DestinationFeedback, []string{"a", "b", "c"})
	assert.ErrorContains(t, err, "connection reset")

	err = store.Append(context.Background(), models.DestinationRegistrations, []string{"a"})
	assert.ErrorContains(t, err, "want 3")
	assert.Empty(t, repo.created)
}
