// ABOUTME: Shared test fakes for analysis tests.
// ABOUTME: In-memory entry store and metric getter.
package analysis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

type fakeStore struct {
	metrics map[uuid.UUID]*models.Metric
	entries map[uuid.UUID][]models.Entry
	failure error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		metrics: make(map[uuid.UUID]*models.Metric),
		entries: make(map[uuid.UUID][]models.Entry),
	}
}

func (s *fakeStore) addMetric(name string, kind models.MetricKind) *models.Metric {
	m := models.NewMetric("local", name, kind, models.Domain{})
	s.metrics[m.ID] = m
	return m
}

func (s *fakeStore) addEntry(metricID uuid.UUID, day time.Time, value float64) {
	s.entries[metricID] = append(s.entries[metricID],
		*models.NewEntry("local", metricID, day, value))
}

func (s *fakeStore) GetMetric(userID string, id uuid.UUID) (*models.Metric, error) {
	m, ok := s.metrics[id]
	if !ok || m.UserID != userID {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownMetric, id)
	}
	return m, nil
}

func (s *fakeStore) GetEntries(userID string, metricID uuid.UUID, rng models.DateRange) ([]models.Entry, error) {
	if s.failure != nil {
		return nil, s.failure
	}
	var out []models.Entry
	for _, e := range s.entries[metricID] {
		if e.UserID == userID && rng.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func rangeOf(t interface{ Fatalf(string, ...any) }, from, to int) models.DateRange {
	rng, err := models.NewDateRange(day(from), day(to))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	return rng
}
