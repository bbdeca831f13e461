package main

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/config"
	applog "alfredoptarigan/job-posting-classifier/internal/logger"
	"alfredoptarigan/job-posting-classifier/internal/models"
	"alfredoptarigan/job-posting-classifier/internal/repositories"
	"alfredoptarigan/job-posting-classifier/internal/services"
)

// Copies the CSV flat files into the records table.
func main() {
	cfg := config.Load()
	log := applog.New(cfg.Log.Level, cfg.Log.Format)
	defer log.Sync()

	log.Info("🚀 Starting record import...")

	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		log.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	repo := repositories.NewRecordRepository(db)
	store := services.NewDatabaseRecordStore(repo)
	ctx := context.Background()

	files := []struct {
		Path        string
		Destination models.Destination
	}{
		{
			Path:        filepath.Join(cfg.Storage.DataPath, cfg.Storage.RegistrationsFile),
			Destination: models.DestinationRegistrations,
		},
		{
			Path:        filepath.Join(cfg.Storage.DataPath, cfg.Storage.FeedbackFile),
			Destination: models.DestinationFeedback,
		},
	}

	for _, file := range files {
		fileLog := log.With(zap.String("file", file.Path), zap.String("destination", string(file.Destination)))

		imported, err := importFile(ctx, store, file.Path, file.Destination)
		if errors.Is(err, os.ErrNotExist) {
			fileLog.Warn("⚠️  File not found, skipping")
			continue
		}
		if err != nil {
			fileLog.Error("❌ Import failed", zap.Int("imported", imported), zap.Error(err))
			continue
		}

		total, err := repo.CountByDestination(ctx, file.Destination)
		if err != nil {
			fileLog.Warn("⚠️  Failed to count records", zap.Error(err))
		}
		fileLog.Info("✅ Imported", zap.Int("rows", imported), zap.Int64("total", total))
	}

	log.Info("🎉 Record import completed")
}

func importFile(ctx context.Context, store services.RecordStore, path string, destination models.Destination) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(destination.Header())

	imported := 0
	first := true
	for {
		row, err := r.Read()
		if err == io.EOF {
			return imported, nil
		}
		if err != nil {
			return imported, err
		}
		if first {
			first = false
			if equalRows(row, destination.Header()) {
				continue
			}
		}

		if err := store.Append(ctx, destination, row); err != nil {
			return imported, err
		}
		imported++
	}
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
