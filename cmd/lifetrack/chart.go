// ABOUTME: Plain-text chart rendering for series output.
// ABOUTME: Consumes already-computed series; no styling leaks into the core.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/scandolo/life-tracker/internal/analysis"
)

const chartWidth = 32

// printSeries renders one line per day: date, value or gap, scaled bar.
func printSeries(s analysis.Series) {
	min, max := observedRange(s)
	faint := color.New(color.Faint)

	for _, p := range s.Points {
		date := faint.Sprint(p.Date.Format(time.DateOnly))
		if !p.Present {
			fmt.Printf("  %s %s\n", date, faint.Sprint("·"))
			continue
		}
		fmt.Printf("  %s %8.2f  %s\n", date, p.Value, bar(p.Value, min, max, chartWidth))
	}
}

// bar scales value between min and max into a fixed-width block bar.
// A constant series fills half the width rather than dividing by zero.
func bar(value, min, max float64, width int) string {
	frac := 0.5
	if max > min {
		frac = (value - min) / (max - min)
	}
	n := 1 + int(frac*float64(width-1))
	if n > width {
		n = width
	}
	return color.CyanString(strings.Repeat("█", n))
}

func observedRange(s analysis.Series) (min, max float64) {
	first := true
	for _, p := range s.Points {
		if !p.Present {
			continue
		}
		if first {
			min, max = p.Value, p.Value
			first = false
			continue
		}
		if p.Value < min {
			min = p.Value
		}
		if p.Value > max {
			max = p.Value
		}
	}
	return min, max
}
