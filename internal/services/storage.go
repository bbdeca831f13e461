package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/repositories"
)

// RecordStore appends ordered rows to a named destination.
type RecordStore interface {
	Append(ctx context.Context, destination models.Destination, row []string) error
}

type CSVRecordStore struct {
	dataPath string
	files    map[models.Destination]string
}

// NewCSVRecordStore stores each destination as a CSV file under dataPath.
func NewCSVRecordStore(dataPath string, files map[models.Destination]string) *CSVRecordStore {
	return &CSVRecordStore{
		dataPath: dataPath,
		files:    files,
	}
}

func (s *CSVRecordStore) EnsureDataDir() error {
	if err := os.MkdirAll(s.dataPath, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	return nil
}

func (s *CSVRecordStore) FilePath(destination models.Destination) (string, error) {
	name, ok := s.files[destination]
	if !ok {
		return "", fmt.Errorf("unknown destination: %s", destination)
	}
	return filepath.Join(s.dataPath, name), nil
}

// Append implements RecordStore. The header row is written when the file is
// new or empty.
func (s *CSVRecordStore) Append(ctx context.Context, destination models.Destination, row []string) error {
	if err := checkRow(destination, row); err != nil {
		return err
	}

	path, err := s.FilePath(destination)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(destination.Header()); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return nil
}

type databaseRecordStore struct {
	repo repositories.RecordRepository
}

// NewDatabaseRecordStore stores rows in the records table.
func NewDatabaseRecordStore(repo repositories.RecordRepository) RecordStore {
	return &databaseRecordStore{repo: repo}
}

// Append implements RecordStore.
func (s *databaseRecordStore) Append(ctx context.Context, destination models.Destination, row []string) error {
	if err := checkRow(destination, row); err != nil {
		return err
	}

	record := &models.Record{
		ID:          uuid.New(),
		Destination: destination,
		Fields:      pq.StringArray(row),
		CreatedAt:   time.Now(),
	}

	return s.repo.Create(ctx, record)
}

func checkRow(destination models.Destination, row []string) error {
	header := destination.Header()
	if header == nil {
		return fmt.Errorf("unknown destination: %s", destination)
	}
	if len(row) != len(header) {
		return fmt.Errorf("%s row has %d fields, want %d", destination, len(row), len(header))
	}
	return nil
}
