// ABOUTME: Tests for date range helpers and entry construction.
// ABOUTME: Ranges are closed intervals of calendar days.
package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayTruncation(t *testing.T) {
	noon := time.Date(2026, time.August, 20, 12, 34, 56, 789, time.UTC)
	if got := Day(noon); !got.Equal(date(2026, time.August, 20)) {
		t.Errorf("Day() = %v, want midnight UTC", got)
	}
}

func TestNewDateRange(t *testing.T) {
	rng, err := NewDateRange(date(2026, time.August, 1), date(2026, time.August, 7))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if rng.Days() != 7 {
		t.Errorf("Days() = %d, want 7", rng.Days())
	}

	dates := rng.Dates()
	if len(dates) != 7 {
		t.Fatalf("Dates() returned %d dates, want 7", len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Errorf("dates not strictly ascending at index %d", i)
		}
	}
	if !dates[0].Equal(rng.Start) || !dates[6].Equal(rng.End) {
		t.Errorf("Dates() endpoints mismatch: %v .. %v", dates[0], dates[6])
	}
}

func TestNewDateRangeRejectsReversed(t *testing.T) {
	_, err := NewDateRange(date(2026, time.August, 7), date(2026, time.August, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, got %v", err)
	}
}

func TestSingleDayRange(t *testing.T) {
	rng, err := NewDateRange(date(2026, time.August, 5), date(2026, time.August, 5))
	if err != nil {
		t.Fatalf("NewDateRange failed: %v", err)
	}
	if rng.Days() != 1 {
		t.Errorf("Days() = %d, want 1", rng.Days())
	}
}

func TestLastNDays(t *testing.T) {
	rng := LastNDays(date(2026, time.August, 20), 7)
	if !rng.Start.Equal(date(2026, time.August, 14)) {
		t.Errorf("Start = %v, want Aug 14", rng.Start)
	}
	if !rng.End.Equal(date(2026, time.August, 20)) {
		t.Errorf("End = %v, want Aug 20", rng.End)
	}
}

func TestContains(t *testing.T) {
	rng := LastNDays(date(2026, time.August, 20), 7)
	if !rng.Contains(date(2026, time.August, 14)) || !rng.Contains(date(2026, time.August, 20)) {
		t.Error("range should contain both endpoints")
	}
	if rng.Contains(date(2026, time.August, 13)) || rng.Contains(date(2026, time.August, 21)) {
		t.Error("range should exclude days outside it")
	}
}

func TestNewEntryTruncatesDate(t *testing.T) {
	e := NewEntry("local", uuid.New(), time.Date(2026, time.August, 20, 23, 59, 0, 0, time.UTC), 7.5)
	if !e.Date.Equal(date(2026, time.August, 20)) {
		t.Errorf("entry date = %v, want calendar day", e.Date)
	}
	if e.Note != nil {
		t.Error("note should default to nil")
	}
	e.WithNote("slept in")
	if e.Note == nil || *e.Note != "slept in" {
		t.Errorf("WithNote failed: %v", e.Note)
	}
}

func TestRatingScalePoints(t *testing.T) {
	scale := RatingScale(1, 5).Scale()
	if len(scale) != 5 || scale[0] != 1 || scale[4] != 5 {
		t.Errorf("Scale() = %v, want [1 2 3 4 5]", scale)
	}
	if RatingScale(3, 1).Scale() != nil {
		t.Error("reversed scale should yield no points")
	}
}
