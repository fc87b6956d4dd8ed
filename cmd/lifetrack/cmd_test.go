// ABOUTME: Tests for CLI helpers: date parsing, domain display, chart scaling.
package main

import (
	"strings"
	"testing"
	"time"

	"github.com/scandolo/life-tracker/internal/analysis"
	"github.com/scandolo/life-tracker/internal/models"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-08-20")
	if err != nil {
		t.Fatalf("parseDate failed: %v", err)
	}
	want := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDate = %v, want %v", got, want)
	}

	for _, s := range []string{"08/20/2026", "2026-8-2", "yesterday", ""} {
		if _, err := parseDate(s); err == nil {
			t.Errorf("parseDate(%q) should fail", s)
		}
	}
}

func TestParseBounds(t *testing.T) {
	d, err := parseBounds("0", "24")
	if err != nil {
		t.Fatalf("parseBounds failed: %v", err)
	}
	if d.Min == nil || *d.Min != 0 || d.Max == nil || *d.Max != 24 {
		t.Errorf("bounds = %+v, want 0..24", d)
	}

	d, err = parseBounds("0", "")
	if err != nil {
		t.Fatalf("parseBounds failed: %v", err)
	}
	if d.Min == nil || d.Max != nil {
		t.Errorf("empty max should stay unbounded: %+v", d)
	}

	if _, err := parseBounds("lots", ""); err == nil {
		t.Error("non-numeric min should fail")
	}
}

func TestDescribeDomain(t *testing.T) {
	tests := []struct {
		name string
		m    *models.Metric
		want string
	}{
		{
			name: "rating scale",
			m:    models.NewMetric("local", "Mood", models.KindQualitative, models.RatingScale(1, 10)),
			want: "scale 1-10",
		},
		{
			name: "bounded",
			m: models.NewMetric("local", "Sleep", models.KindQuantitative,
				models.QuantitativeDomain(models.Bound(0), models.Bound(24))),
			want: "range 0 to 24",
		},
		{
			name: "min only",
			m: models.NewMetric("local", "Spending", models.KindQuantitative,
				models.QuantitativeDomain(models.Bound(0), nil)),
			want: "range 0 and up",
		},
		{
			name: "max only",
			m: models.NewMetric("local", "Deficit", models.KindQuantitative,
				models.QuantitativeDomain(nil, models.Bound(100))),
			want: "range up to 100",
		},
		{
			name: "unbounded",
			m:    models.NewMetric("local", "Anything", models.KindQuantitative, models.Domain{}),
			want: "unbounded",
		},
	}
	for _, tt := range tests {
		if got := describeDomain(tt.m); got != tt.want {
			t.Errorf("%s: describeDomain = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBarScaling(t *testing.T) {
	// Block count, ignoring color escapes.
	blocks := func(s string) int { return strings.Count(s, "█") }

	if got := blocks(bar(0, 0, 10, 32)); got != 1 {
		t.Errorf("minimum value bar = %d blocks, want 1", got)
	}
	if got := blocks(bar(10, 0, 10, 32)); got != 32 {
		t.Errorf("maximum value bar = %d blocks, want 32", got)
	}
	mid := blocks(bar(5, 0, 10, 32))
	if mid <= 1 || mid >= 32 {
		t.Errorf("midpoint bar = %d blocks, want between 1 and 32", mid)
	}

	// Constant series: no zero division, half-width bar.
	if got := blocks(bar(5, 5, 5, 32)); got != 16 {
		t.Errorf("constant series bar = %d blocks, want 16", got)
	}
}

func TestObservedRange(t *testing.T) {
	s := seriesFromValues(7, 6, 8)
	min, max := observedRange(s)
	if min != 6 || max != 8 {
		t.Errorf("observedRange = %g/%g, want 6/8", min, max)
	}

	// Absent points carry no weight.
	s.Points[1].Present = false
	min, max = observedRange(s)
	if min != 7 || max != 8 {
		t.Errorf("observedRange with gap = %g/%g, want 7/8", min, max)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight must not truncate: %q", got)
	}
}

func seriesFromValues(values ...float64) analysis.Series {
	var s analysis.Series
	for i, v := range values {
		s.Points = append(s.Points, analysis.Point{
			Date:    time.Date(2026, time.August, i+1, 0, 0, 0, 0, time.UTC),
			Value:   v,
			Present: true,
		})
	}
	return s
}
