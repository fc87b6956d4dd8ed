// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Opens a throwaway SQLite database per test.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/scandolo/life-tracker/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func testDay(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func testRange(t *testing.T, from, to int) models.DateRange {
	t.Helper()
	rng, err := models.NewDateRange(testDay(from), testDay(to))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	return rng
}
