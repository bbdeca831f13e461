package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/job-posting-classifier/internal/metrics"
	"alfredoptarigan/job-posting-classifier/internal/models"
)

var ErrWriterStopped = errors.New("record writer stopped")

// RecordWriter is a RecordStore that funnels every destination through a
// single goroutine, so rows from concurrent sessions never interleave.
type RecordWriter interface {
	RecordStore
	Start()
	Stop()
}

type appendJob struct {
	ctx  context.Context
	row  []string
	done chan error
}

type recordWriter struct {
	store  RecordStore
	queues map[models.Destination]chan appendJob
	log    *zap.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

func NewRecordWriter(
	store RecordStore,
	destinations []models.Destination,
	queueSize int,
	log *zap.Logger,
) RecordWriter {
	queues := make(map[models.Destination]chan appendJob, len(destinations))
	for _, d := range destinations {
		queues[d] = make(chan appendJob, queueSize)
	}

	return &recordWriter{
		store:  store,
		queues: queues,
		log:    log,
	}
}

// Start implements RecordWriter.
func (w *recordWriter) Start() {
	w.log.Info("🚀 Starting record writer", zap.Int("destinations", len(w.queues)))

	for destination, queue := range w.queues {
		w.wg.Add(1)
		go w.processAppends(destination, queue)
	}
}

// Stop implements RecordWriter. Queued rows are written before it returns.
func (w *recordWriter) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.log.Info("🛑 Stopping record writer...")
	w.stopped = true
	for _, queue := range w.queues {
		close(queue)
	}
	w.mu.Unlock()

	w.wg.Wait()
	w.log.Info("✅ Record writer stopped")
}

// Append implements RecordStore. ctx only bounds the wait for queue space.
// Once queued the row is always written and Append returns the write result.
func (w *recordWriter) Append(ctx context.Context, destination models.Destination, row []string) error {
	job := appendJob{ctx: context.WithoutCancel(ctx), row: row, done: make(chan error, 1)}

	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return ErrWriterStopped
	}
	queue, ok := w.queues[destination]
	if !ok {
		w.mu.RUnlock()
		return fmt.Errorf("unknown destination: %s", destination)
	}
	select {
	case queue <- job:
	case <-ctx.Done():
		w.mu.RUnlock()
		return ctx.Err()
	}
	w.mu.RUnlock()

	return <-job.done
}

func (w *recordWriter) processAppends(destination models.Destination, queue <-chan appendJob) {
	defer w.wg.Done()

	for job := range queue {
		err := w.store.Append(job.ctx, destination, job.row)
		if err != nil {
			w.log.Error("❌ Failed to append record",
				zap.String("destination", string(destination)),
				zap.Error(err))
		} else {
			metrics.RecordsAppended.WithLabelValues(string(destination)).Inc()
		}
		job.done <- err
	}

	w.log.Debug("Record writer queue drained", zap.String("destination", string(destination)))
}
