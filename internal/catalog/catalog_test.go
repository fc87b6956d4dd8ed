// ABOUTME: Tests for metric definition and value validation.
// ABOUTME: Uses an in-memory MetricStore fake.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

// memStore is an in-memory MetricStore for catalog tests.
type memStore struct {
	metrics map[uuid.UUID]*models.Metric
}

func newMemStore() *memStore {
	return &memStore{metrics: make(map[uuid.UUID]*models.Metric)}
}

func (s *memStore) SaveMetric(m *models.Metric) error {
	s.metrics[m.ID] = m
	return nil
}

func (s *memStore) GetMetric(userID string, id uuid.UUID) (*models.Metric, error) {
	m, ok := s.metrics[id]
	if !ok || m.UserID != userID {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownMetric, id)
	}
	return m, nil
}

func (s *memStore) GetMetricByName(userID, name string) (*models.Metric, error) {
	for _, m := range s.metrics {
		if m.UserID == userID && m.Name == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownMetric, name)
}

func (s *memStore) ListMetrics(userID string) ([]*models.Metric, error) {
	var out []*models.Metric
	for _, m := range s.metrics {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) UpdateMetric(m *models.Metric) error {
	if _, ok := s.metrics[m.ID]; !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownMetric, m.ID)
	}
	s.metrics[m.ID] = m
	return nil
}

func (s *memStore) DeleteMetric(userID string, id uuid.UUID) error {
	if _, ok := s.metrics[id]; !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownMetric, id)
	}
	delete(s.metrics, id)
	return nil
}

func sleepHoursDef() Definition {
	return Definition{
		Name:   "Hours of Sleep",
		Kind:   models.KindQuantitative,
		Domain: models.QuantitativeDomain(models.Bound(0), models.Bound(24)),
	}
}

func moodDef() Definition {
	return Definition{
		Name:   "Mood",
		Kind:   models.KindQualitative,
		Domain: models.RatingScale(1, 5),
	}
}

func TestDefineMetric(t *testing.T) {
	c := New(newMemStore())

	m, err := c.Define("local", sleepHoursDef())
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if m.Name != "Hours of Sleep" || m.Kind != models.KindQuantitative {
		t.Errorf("unexpected metric: %+v", m)
	}

	got, err := c.GetByName("local", "Hours of Sleep")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.ID != m.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, m.ID)
	}
}

func TestDefineDuplicateRejected(t *testing.T) {
	c := New(newMemStore())

	if _, err := c.Define("local", sleepHoursDef()); err != nil {
		t.Fatalf("first Define failed: %v", err)
	}
	_, err := c.Define("local", sleepHoursDef())
	if !errors.Is(err, models.ErrDuplicateMetric) {
		t.Errorf("expected ErrDuplicateMetric, got %v", err)
	}

	// Same name is fine for a different user.
	if _, err := c.Define("other", sleepHoursDef()); err != nil {
		t.Errorf("Define for other user failed: %v", err)
	}
}

func TestDefineInvalidDomains(t *testing.T) {
	c := New(newMemStore())

	tests := []struct {
		name string
		def  Definition
	}{
		{
			name: "min above max",
			def: Definition{
				Name:   "Backwards",
				Kind:   models.KindQuantitative,
				Domain: models.QuantitativeDomain(models.Bound(10), models.Bound(5)),
			},
		},
		{
			name: "empty rating scale",
			def: Definition{
				Name:   "Empty Scale",
				Kind:   models.KindQualitative,
				Domain: models.RatingScale(5, 1),
			},
		},
		{
			name: "unknown kind",
			def:  Definition{Name: "Mystery", Kind: "vibes"},
		},
		{
			name: "blank name",
			def:  Definition{Name: "   ", Kind: models.KindQuantitative},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Define("local", tt.def)
			if !errors.Is(err, models.ErrInvalidDomain) {
				t.Errorf("expected ErrInvalidDomain, got %v", err)
			}
		})
	}
}

func TestValidateQuantitative(t *testing.T) {
	c := New(newMemStore())
	m, err := c.Define("local", sleepHoursDef())
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	// Bounds themselves are accepted.
	for _, v := range []float64{0, 7.25, 24} {
		got, err := ValidateValue(m, v)
		if err != nil {
			t.Errorf("ValidateValue(%g) unexpected error: %v", v, err)
		}
		if got != v {
			t.Errorf("ValidateValue(%g) = %g, want unchanged", v, got)
		}
	}

	for _, v := range []float64{-0.1, 24.1, math.NaN(), math.Inf(1)} {
		if _, err := ValidateValue(m, v); !errors.Is(err, models.ErrValueOutOfDomain) {
			t.Errorf("ValidateValue(%g) expected ErrValueOutOfDomain, got %v", v, err)
		}
	}
}

func TestValidateUnboundedQuantitative(t *testing.T) {
	c := New(newMemStore())
	m, err := c.Define("local", Definition{
		Name:   "Discretionary Spending",
		Kind:   models.KindQuantitative,
		Domain: models.QuantitativeDomain(models.Bound(0), nil),
	})
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	if _, err := ValidateValue(m, 1e9); err != nil {
		t.Errorf("unbounded max should accept large values: %v", err)
	}
	if _, err := ValidateValue(m, -1); !errors.Is(err, models.ErrValueOutOfDomain) {
		t.Errorf("expected ErrValueOutOfDomain below min, got %v", err)
	}
}

func TestValidateQualitative(t *testing.T) {
	c := New(newMemStore())
	m, err := c.Define("local", moodDef())
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	for _, v := range []float64{1, 3, 5} {
		got, err := ValidateValue(m, v)
		if err != nil {
			t.Errorf("ValidateValue(%g) unexpected error: %v", v, err)
		}
		if got != v {
			t.Errorf("ValidateValue(%g) = %g", v, got)
		}
	}

	// Only declared scale points pass: 0, 6, and 3.5 are all rejected.
	for _, v := range []float64{0, 6, 3.5} {
		if _, err := ValidateValue(m, v); !errors.Is(err, models.ErrInvalidRating) {
			t.Errorf("ValidateValue(%g) expected ErrInvalidRating, got %v", v, err)
		}
	}
}

func TestUpdateDomainKeepsKind(t *testing.T) {
	store := newMemStore()
	c := New(store)
	m, err := c.Define("local", moodDef())
	if err != nil {
		t.Fatalf("Define failed: %v", err)
	}

	updated, err := c.UpdateDomain("local", m.ID, models.RatingScale(1, 10), "wider scale")
	if err != nil {
		t.Fatalf("UpdateDomain failed: %v", err)
	}
	if updated.Domain.ScaleMax != 10 {
		t.Errorf("ScaleMax = %d, want 10", updated.Domain.ScaleMax)
	}
	if updated.Kind != models.KindQualitative {
		t.Errorf("kind changed to %s", updated.Kind)
	}

	_, err = c.UpdateDomain("local", m.ID, models.RatingScale(10, 1), "")
	if !errors.Is(err, models.ErrInvalidDomain) {
		t.Errorf("expected ErrInvalidDomain for reversed scale, got %v", err)
	}
}

func TestSeedDefaults(t *testing.T) {
	c := New(newMemStore())

	created, err := c.SeedDefaults("local")
	if err != nil {
		t.Fatalf("SeedDefaults failed: %v", err)
	}
	if want := len(DefaultDefinitions()); created != want {
		t.Errorf("created %d metrics, want %d", created, want)
	}

	// Seeding again creates nothing.
	created, err = c.SeedDefaults("local")
	if err != nil {
		t.Fatalf("second SeedDefaults failed: %v", err)
	}
	if created != 0 {
		t.Errorf("second seed created %d metrics, want 0", created)
	}
}
