package services

import (
	"context"
	"sync"

	"alfredoptarigan/job-posting-classifier/internal/models"
)

// memoryStore records appended rows for assertions.
type memoryStore struct {
	mu   sync.Mutex
	rows map[models.Destination][][]string
	err  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[models.Destination][][]string)}
}

func (m *memoryStore) Append(_ context.Context, destination models.Destination, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows[destination] = append(m.rows[destination], row)
	return nil
}

func (m *memoryStore) Rows(destination models.Destination) [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[destination]
}
