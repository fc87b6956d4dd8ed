// ABOUTME: Metric model, metric kinds, and value domains.
// ABOUTME: Quantitative metrics carry numeric bounds; qualitative ones an ordinal rating scale.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MetricKind distinguishes numeric measurements from ordinal ratings.
type MetricKind string

const (
	KindQuantitative MetricKind = "quantitative"
	KindQualitative  MetricKind = "qualitative"
)

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	return s == string(KindQuantitative) || s == string(KindQualitative)
}

// Domain describes the values a metric accepts.
// Quantitative metrics use Min/Max; nil means unbounded on that side.
// Qualitative metrics use the integer rating scale [ScaleMin, ScaleMax].
type Domain struct {
	Min      *float64
	Max      *float64
	ScaleMin int
	ScaleMax int
}

// Scale returns the ordered rating points of a qualitative domain.
func (d Domain) Scale() []int {
	if d.ScaleMin > d.ScaleMax {
		return nil
	}
	points := make([]int, 0, d.ScaleMax-d.ScaleMin+1)
	for p := d.ScaleMin; p <= d.ScaleMax; p++ {
		points = append(points, p)
	}
	return points
}

// QuantitativeDomain builds a numeric domain. A nil bound is unbounded.
func QuantitativeDomain(min, max *float64) Domain {
	return Domain{Min: min, Max: max}
}

// Bound is a convenience for building optional domain bounds.
func Bound(v float64) *float64 {
	return &v
}

// RatingScale builds a qualitative domain over the integers [min, max].
func RatingScale(min, max int) Domain {
	return Domain{ScaleMin: min, ScaleMax: max}
}

// Metric defines one tracked quantity: its identity, kind, and value domain.
// Names are unique per user. Kind never changes once entries exist, since
// reinterpreting historical values would corrupt their semantics.
type Metric struct {
	ID          uuid.UUID
	UserID      string
	Name        string
	Kind        MetricKind
	Domain      Domain
	Category    string
	Description string
	Example     *string // sample value hint for quantitative metrics
	ExampleLow  *string // anchor text for the lowest rating
	ExampleHigh *string // anchor text for the highest rating
	CreatedAt   time.Time
}

// NewMetric creates a new Metric with generated UUID and current timestamp.
func NewMetric(userID, name string, kind MetricKind, domain Domain) *Metric {
	return &Metric{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		Domain:    domain,
		CreatedAt: time.Now(),
	}
}

// WithCategory sets the metric's category.
func (m *Metric) WithCategory(category string) *Metric {
	m.Category = category
	return m
}

// WithDescription sets the metric's description.
func (m *Metric) WithDescription(description string) *Metric {
	m.Description = description
	return m
}

// WithExample sets a sample value hint for a quantitative metric.
func (m *Metric) WithExample(example string) *Metric {
	m.Example = &example
	return m
}

// WithScaleExamples sets anchor text for the ends of a rating scale.
func (m *Metric) WithScaleExamples(low, high string) *Metric {
	m.ExampleLow = &low
	m.ExampleHigh = &high
	return m
}
