package repository_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jakaplan/zebra/models"
	"github.com/jakaplan/zebra/repository"

	"github.com/stretchr/testify/assert"
)

func record(id string, createdAt time.Time) models.TransactionRecord {
	return models.TransactionRecord{
		IntentID:  id,
		CreatedAt: createdAt,
		Product:   "Candy Cane",
		Price:     249,
		Name:      "Ann",
		Email:     "a@x.com",
		Address:   "1 Main",
		City:      "Springfield",
		State:     "IL",
	}
}

func TestPutThenTake(t *testing.T) {
	store := repository.NewMemoryPendingStore()
	rec := record("pi_1", time.Now())

	store.Put("pi_1", rec)

	got, ok := store.Take("pi_1")
	assert.True(t, ok)
	assert.Equal(t, rec, got)

	_, ok = store.Take("pi_1")
	assert.False(t, ok, "second take must observe absence")
}

func TestTakeUnknownID(t *testing.T) {
	store := repository.NewMemoryPendingStore()

	_, ok := store.Take("pi_never_created")
	assert.False(t, ok)
}

func TestPutOverwritesLastWriteWins(t *testing.T) {
	store := repository.NewMemoryPendingStore()
	first := record("pi_1", time.Now())
	second := first
	second.Name = "Beth"

	store.Put("pi_1", first)
	store.Put("pi_1", second)

	got, ok := store.Take("pi_1")
	assert.True(t, ok)
	assert.Equal(t, "Beth", got.Name)
}

func TestSweepExpiredRemovesOnlyOldEntries(t *testing.T) {
	store := repository.NewMemoryPendingStore()
	now := time.Now()
	maxAge := 30 * time.Minute

	store.Put("pi_old", record("pi_old", now.Add(-31*time.Minute)))
	store.Put("pi_fresh", record("pi_fresh", now.Add(-5*time.Minute)))
	store.Put("pi_boundary", record("pi_boundary", now.Add(-maxAge)))

	removed := store.SweepExpired(now, maxAge)
	assert.Equal(t, 1, removed)

	_, ok := store.Take("pi_old")
	assert.False(t, ok, "expired entry must be gone")

	_, ok = store.Take("pi_fresh")
	assert.True(t, ok)

	// Exactly maxAge old is not yet expired.
	_, ok = store.Take("pi_boundary")
	assert.True(t, ok)
}

func TestConcurrentTakeExactlyOneWinner(t *testing.T) {
	store := repository.NewMemoryPendingStore()

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("pi_%d", i)
		store.Put(id, record(id, time.Now()))

		var wg sync.WaitGroup
		wins := make(chan bool, 2)
		for w := 0; w < 2; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, ok := store.Take(id); ok {
					wins <- true
				}
			}()
		}
		wg.Wait()
		close(wins)

		assert.Len(t, wins, 1, "exactly one concurrent take must succeed")
	}
}

func TestSweepAndTakeNeverBothWin(t *testing.T) {
	store := repository.NewMemoryPendingStore()
	maxAge := 30 * time.Minute

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("pi_%d", i)
		store.Put(id, record(id, time.Now().Add(-time.Hour)))

		var wg sync.WaitGroup
		outcomes := make(chan string, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, ok := store.Take(id); ok {
				outcomes <- "finalized"
			}
		}()
		go func() {
			defer wg.Done()
			if store.SweepExpired(time.Now(), maxAge) > 0 {
				outcomes <- "expired"
			}
		}()
		wg.Wait()
		close(outcomes)

		assert.Len(t, outcomes, 1, "exactly one of finalize/expire must win")
	}
}
