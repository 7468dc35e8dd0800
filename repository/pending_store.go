package repository

import (
	"sync"
	"time"

	"github.com/jakaplan/zebra/metrics"
	"github.com/jakaplan/zebra/models"
)

// PendingStore holds in-flight checkouts between intent creation and webhook
// confirmation. Entries are evicted by the expiry sweep if never confirmed.
type PendingStore interface {
	// Put inserts or overwrites the record for an intent id.
	Put(intentID string, rec models.TransactionRecord)
	// Take atomically removes and returns the record for an intent id.
	// A second Take for the same id reports false, which is how duplicate
	// webhook deliveries are deduplicated.
	Take(intentID string) (models.TransactionRecord, bool)
	// SweepExpired removes every record created more than maxAge before now
	// and returns the number removed. Expired checkouts are discarded with
	// no log entry.
	SweepExpired(now time.Time, maxAge time.Duration) int
}

type memoryPendingStore struct {
	mu      sync.Mutex
	records map[string]models.TransactionRecord
}

func NewMemoryPendingStore() PendingStore {
	return &memoryPendingStore{records: make(map[string]models.TransactionRecord)}
}

func (s *memoryPendingStore) Put(intentID string, rec models.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[intentID] = rec
}

func (s *memoryPendingStore) Take(intentID string) (models.TransactionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[intentID]
	if ok {
		delete(s.records, intentID)
	}
	return rec, ok
}

func (s *memoryPendingStore) SweepExpired(now time.Time, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, rec := range s.records {
		if rec.CreatedAt.Add(maxAge).Before(now) {
			delete(s.records, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.PendingExpired.Add(float64(removed))
	}
	return removed
}
