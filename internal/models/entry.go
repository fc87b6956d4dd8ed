// ABOUTME: Entry model and calendar date range helpers.
// ABOUTME: Entries are keyed by (user, metric, date); one value per day.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded value for a metric on a calendar date.
// At most one entry exists per (user, metric, date); a later write for
// the same key overwrites the stored value.
type Entry struct {
	UserID    string
	MetricID  uuid.UUID
	Date      time.Time
	Value     float64
	Note      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry creates an Entry for the given day. The date is truncated to
// its calendar date; entries carry no time-of-day component.
func NewEntry(userID string, metricID uuid.UUID, date time.Time, value float64) *Entry {
	now := time.Now()
	return &Entry{
		UserID:    userID,
		MetricID:  metricID,
		Date:      Day(date),
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithNote attaches a free-text note to the entry.
func (e *Entry) WithNote(note string) *Entry {
	e.Note = &note
	return e
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds an inclusive range of calendar days.
func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := Day(start), Day(end)
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidRange, e.Format(time.DateOnly), s.Format(time.DateOnly))
	}
	return DateRange{Start: s, End: e}, nil
}

// LastNDays returns the n-day range ending on the given day, inclusive.
func LastNDays(end time.Time, n int) DateRange {
	if n < 1 {
		n = 1
	}
	e := Day(end)
	return DateRange{Start: e.AddDate(0, 0, -(n - 1)), End: e}
}

// Days returns the number of calendar days in the range.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Dates returns every calendar day in the range in ascending order.
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Days())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// Contains reports whether the day of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}
