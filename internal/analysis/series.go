// ABOUTME: Series construction from stored entries: gap-aware, date-aligned.
// ABOUTME: Absent days are tri-state markers, never sentinel values.
package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/scandolo/life-tracker/internal/models"
)

// Point is one day on a metric's time axis. Present is false when no
// entry was recorded for that day, which is distinct from a stored zero
// or lowest rating.
type Point struct {
	Date    time.Time
	Value   float64
	Present bool
}

// Series is a date-ordered sequence of points for one metric, one point
// per calendar day of the requested range.
type Series struct {
	MetricID uuid.UUID
	Name     string
	Kind     models.MetricKind
	Points   []Point
}

// PresentValues returns the recorded values in date order, absences excluded.
func (s Series) PresentValues() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		if p.Present {
			values = append(values, p.Value)
		}
	}
	return values
}

// PresentCount returns the number of days with a recorded value.
func (s Series) PresentCount() int {
	n := 0
	for _, p := range s.Points {
		if p.Present {
			n++
		}
	}
	return n
}

// EntryStore is the read contract the builder consumes. Entries come
// back ordered ascending by date, scoped to the closed range.
type EntryStore interface {
	GetEntries(userID string, metricID uuid.UUID, rng models.DateRange) ([]models.Entry, error)
}

// MetricGetter resolves metric definitions for the requesting user.
type MetricGetter interface {
	GetMetric(userID string, id uuid.UUID) (*models.Metric, error)
}

// Builder converts raw stored entries into aligned, gap-aware series.
// Building is deterministic: the same stored entries and range always
// yield the same series.
type Builder struct {
	entries EntryStore
	metrics MetricGetter
}

// NewBuilder creates a Builder over the given stores.
func NewBuilder(entries EntryStore, metrics MetricGetter) *Builder {
	return &Builder{entries: entries, metrics: metrics}
}

// BuildSeries produces one point per calendar day in the closed range,
// in ascending date order. Days without an entry are marked absent.
// Returns models.ErrUnknownMetric if the metric does not exist for the
// user. A store failure aborts the build; no partial series is returned.
func (b *Builder) BuildSeries(userID string, metricID uuid.UUID, rng models.DateRange) (Series, error) {
	m, err := b.metrics.GetMetric(userID, metricID)
	if err != nil {
		return Series{}, err
	}

	entries, err := b.entries.GetEntries(userID, metricID, rng)
	if err != nil {
		return Series{}, err
	}

	byDay := make(map[time.Time]float64, len(entries))
	for _, e := range entries {
		byDay[models.Day(e.Date)] = e.Value
	}

	dates := rng.Dates()
	points := make([]Point, len(dates))
	for i, d := range dates {
		points[i] = Point{Date: d}
		if v, ok := byDay[d]; ok {
			points[i].Value = v
			points[i].Present = true
		}
	}

	return Series{MetricID: m.ID, Name: m.Name, Kind: m.Kind, Points: points}, nil
}

// AlignedPair holds two series over an identical date axis so consumers
// can index positionally. Joint flags the dates usable for pairwise
// analysis: those where both series have a present value.
type AlignedPair struct {
	Dates []time.Time
	A, B  Series
	Joint []bool
}

// BuildAlignedPair builds both series over the shared date axis of the
// requested range.
func (b *Builder) BuildAlignedPair(userID string, idA, idB uuid.UUID, rng models.DateRange) (AlignedPair, error) {
	a, err := b.BuildSeries(userID, idA, rng)
	if err != nil {
		return AlignedPair{}, err
	}
	bb, err := b.BuildSeries(userID, idB, rng)
	if err != nil {
		return AlignedPair{}, err
	}

	dates := rng.Dates()
	joint := make([]bool, len(dates))
	for i := range dates {
		joint[i] = a.Points[i].Present && bb.Points[i].Present
	}

	return AlignedPair{Dates: dates, A: a, B: bb, Joint: joint}, nil
}

// JointCount returns the number of dates where both series are present.
func (p AlignedPair) JointCount() int {
	n := 0
	for _, ok := range p.Joint {
		if ok {
			n++
		}
	}
	return n
}

// JointValues returns the paired values at jointly-present dates.
func (p AlignedPair) JointValues() (xs, ys []float64) {
	for i, ok := range p.Joint {
		if ok {
			xs = append(xs, p.A.Points[i].Value)
			ys = append(ys, p.B.Points[i].Value)
		}
	}
	return xs, ys
}
