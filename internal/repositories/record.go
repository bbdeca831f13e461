package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/job-posting-classifier/internal/models"
)

type RecordRepository interface {
	Create(ctx context.Context, record *models.Record) error
	CountByDestination(ctx context.Context, destination models.Destination) (int64, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// Create implements RecordRepository.
func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// CountByDestination implements RecordRepository.
func (r *recordRepository) CountByDestination(ctx context.Context, destination models.Destination) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Record{}).
		Where("destination = ?", destination).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
