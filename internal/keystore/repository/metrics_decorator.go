package repository

import (
	"context"
	"time"

	"github.com/worachetdee/lifenovelRN/internal/metrics"
)

const metricsDomain = "keystore"

// Store is the contract shared by every backend in this package.
type Store interface {
	Put(ctx context.Context, alias string, secret []byte) error
	Get(ctx context.Context, alias string) ([]byte, bool)
	Delete(ctx context.Context, alias string) error
}

// storeWithMetrics decorates a Store with metrics instrumentation. Get
// reports "hit" or "miss" since it has no error to classify.
type storeWithMetrics struct {
	next    Store
	metrics metrics.BusinessMetrics
}

// NewStoreWithMetrics wraps store with metrics recording.
func NewStoreWithMetrics(store Store, m metrics.BusinessMetrics) Store {
	return &storeWithMetrics{next: store, metrics: m}
}

func (s *storeWithMetrics) record(ctx context.Context, operation, status string, start time.Time) {
	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Put records metrics for secure store writes.
func (s *storeWithMetrics) Put(ctx context.Context, alias string, secret []byte) error {
	start := time.Now()
	err := s.next.Put(ctx, alias, secret)

	status := "success"
	if err != nil {
		status = "error"
	}
	s.record(ctx, "put", status, start)
	return err
}

// Get records metrics for secure store reads.
func (s *storeWithMetrics) Get(ctx context.Context, alias string) ([]byte, bool) {
	start := time.Now()
	secret, ok := s.next.Get(ctx, alias)

	status := "hit"
	if !ok {
		status = "miss"
	}
	s.record(ctx, "get", status, start)
	return secret, ok
}

// Delete records metrics for secure store deletes.
func (s *storeWithMetrics) Delete(ctx context.Context, alias string) error {
	start := time.Now()
	err := s.next.Delete(ctx, alias)

	status := "success"
	if err != nil {
		status = "error"
	}
	s.record(ctx, "delete", status, start)
	return err
}
