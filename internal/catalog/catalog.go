// ABOUTME: Metric catalog: definition and value validation against a metric's domain.
// ABOUTME: Persistence goes through the MetricStore interface; the catalog holds no state.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

// MetricStore is the persistence contract the catalog consumes.
// Metric definitions live alongside entries but in a distinct namespace.
type MetricStore interface {
	SaveMetric(m *models.Metric) error
	GetMetric(userID string, id uuid.UUID) (*models.Metric, error)
	GetMetricByName(userID, name string) (*models.Metric, error)
	ListMetrics(userID string) ([]*models.Metric, error)
	UpdateMetric(m *models.Metric) error
	DeleteMetric(userID string, id uuid.UUID) error
}

// Catalog validates metric definitions and values against their domains.
type Catalog struct {
	store MetricStore
}

// New creates a Catalog backed by the given store.
func New(store MetricStore) *Catalog {
	return &Catalog{store: store}
}

// Definition carries the user-supplied fields of a new metric.
type Definition struct {
	Name        string
	Kind        models.MetricKind
	Domain      models.Domain
	Category    string
	Description string
	Example     string
	ExampleLow  string
	ExampleHigh string
}

// Define validates and persists a new metric for the user.
// Returns models.ErrDuplicateMetric if the name is taken and
// models.ErrInvalidDomain if the domain bounds are inconsistent.
func (c *Catalog) Define(userID string, def Definition) (*models.Metric, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty metric name", models.ErrInvalidDomain)
	}
	if err := ValidateDomain(def.Kind, def.Domain); err != nil {
		return nil, err
	}

	if _, err := c.store.GetMetricByName(userID, name); err == nil {
		return nil, fmt.Errorf("%w: %q", models.ErrDuplicateMetric, name)
	} else if !errors.Is(err, models.ErrUnknownMetric) {
		return nil, err
	}

	m := models.NewMetric(userID, name, def.Kind, def.Domain).
		WithCategory(def.Category).
		WithDescription(def.Description)
	if def.Example != "" {
		m.WithExample(def.Example)
	}
	if def.ExampleLow != "" || def.ExampleHigh != "" {
		m.WithScaleExamples(def.ExampleLow, def.ExampleHigh)
	}

	if err := c.store.SaveMetric(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ValidateDomain checks that a domain is internally consistent for its kind.
func ValidateDomain(kind models.MetricKind, d models.Domain) error {
	switch kind {
	case models.KindQuantitative:
		if d.Min != nil && d.Max != nil && *d.Min > *d.Max {
			return fmt.Errorf("%w: min %g > max %g", models.ErrInvalidDomain, *d.Min, *d.Max)
		}
	case models.KindQualitative:
		if d.ScaleMin > d.ScaleMax {
			return fmt.Errorf("%w: empty rating scale [%d, %d]",
				models.ErrInvalidDomain, d.ScaleMin, d.ScaleMax)
		}
	default:
		return fmt.Errorf("%w: unknown metric kind %q", models.ErrInvalidDomain, kind)
	}
	return nil
}

// ValidateValue checks raw against the metric's domain and returns the
// normalized value. Invalid values are rejected, never coerced.
func ValidateValue(m *models.Metric, raw float64) (float64, error) {
	switch m.Kind {
	case models.KindQuantitative:
		if math.IsNaN(raw) || math.IsInf(raw, 0) {
			return 0, fmt.Errorf("%w: %q requires a finite number", models.ErrValueOutOfDomain, m.Name)
		}
		if m.Domain.Min != nil && raw < *m.Domain.Min {
			return 0, fmt.Errorf("%w: %g below minimum %g for %q",
				models.ErrValueOutOfDomain, raw, *m.Domain.Min, m.Name)
		}
		if m.Domain.Max != nil && raw > *m.Domain.Max {
			return 0, fmt.Errorf("%w: %g above maximum %g for %q",
				models.ErrValueOutOfDomain, raw, *m.Domain.Max, m.Name)
		}
		return raw, nil

	case models.KindQualitative:
		if raw != math.Trunc(raw) || math.IsNaN(raw) || math.IsInf(raw, 0) {
			return 0, fmt.Errorf("%w: %g is not a whole rating on the %d-%d scale of %q",
				models.ErrInvalidRating, raw, m.Domain.ScaleMin, m.Domain.ScaleMax, m.Name)
		}
		rating := int(raw)
		if rating < m.Domain.ScaleMin || rating > m.Domain.ScaleMax {
			return 0, fmt.Errorf("%w: %d outside the %d-%d scale of %q",
				models.ErrInvalidRating, rating, m.Domain.ScaleMin, m.Domain.ScaleMax, m.Name)
		}
		return float64(rating), nil

	default:
		return 0, fmt.Errorf("%w: metric %q has unknown kind %q",
			models.ErrInvalidDomain, m.Name, m.Kind)
	}
}

// Get retrieves a metric by id.
func (c *Catalog) Get(userID string, id uuid.UUID) (*models.Metric, error) {
	return c.store.GetMetric(userID, id)
}

// GetByName retrieves a metric by its unique-per-user name.
func (c *Catalog) GetByName(userID, name string) (*models.Metric, error) {
	return c.store.GetMetricByName(userID, strings.TrimSpace(name))
}

// List returns all of the user's metrics.
func (c *Catalog) List(userID string) ([]*models.Metric, error) {
	return c.store.ListMetrics(userID)
}

// UpdateDomain replaces a metric's domain and description. The metric's
// kind is fixed at definition time; only bounds and text can change.
func (c *Catalog) UpdateDomain(userID string, id uuid.UUID, domain models.Domain, description string) (*models.Metric, error) {
	m, err := c.store.GetMetric(userID, id)
	if err != nil {
		return nil, err
	}
	if err := ValidateDomain(m.Kind, domain); err != nil {
		return nil, err
	}
	m.Domain = domain
	if description != "" {
		m.Description = description
	}
	if err := c.store.UpdateMetric(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes a metric. The store cascades deletion to the metric's
// entries, so no stale series can be built afterwards.
func (c *Catalog) Delete(userID string, id uuid.UUID) error {
	return c.store.DeleteMetric(userID, id)
}
