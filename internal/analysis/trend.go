// ABOUTME: Trend summary over a single metric's series.
// ABOUTME: Direction, trailing moving average, and observed min/max.
package analysis

// Direction classifies a series' overall movement.
type Direction string

const (
	DirectionRising  Direction = "rising"
	DirectionFalling Direction = "falling"
	DirectionFlat    Direction = "flat"

	// DirectionInsufficientData is a valid, reportable degenerate result
	// for series with fewer than two present points, not a failure.
	DirectionInsufficientData Direction = "insufficient_data"
)

// DefaultWindow is the trailing moving-average window in days.
const DefaultWindow = 7

// TrendSummary is the descriptive output for one series.
// ObservedMin/Max are meaningful only when SampleSize > 0.
type TrendSummary struct {
	Direction     Direction
	MovingAverage []Point
	ObservedMin   float64
	ObservedMax   float64
	SampleSize    int
}

// TrendAnalyzer computes trend summaries. The zero value uses a 7-day
// window and an exact-compare flat tolerance.
type TrendAnalyzer struct {
	// Window is the trailing moving-average window size in days.
	Window int

	// FlatTolerance is the absolute difference between the first-third
	// and last-third means at or below which the direction is flat.
	FlatTolerance float64
}

// Summarize computes the trend summary for a series. Absent points are
// excluded from every aggregate, never treated as zero.
func (a TrendAnalyzer) Summarize(s Series) TrendSummary {
	window := a.Window
	if window <= 0 {
		window = DefaultWindow
	}

	present := s.PresentValues()
	summary := TrendSummary{
		Direction:  DirectionInsufficientData,
		SampleSize: len(present),
	}
	if len(present) == 0 {
		return summary
	}

	summary.ObservedMin, summary.ObservedMax = present[0], present[0]
	for _, v := range present[1:] {
		if v < summary.ObservedMin {
			summary.ObservedMin = v
		}
		if v > summary.ObservedMax {
			summary.ObservedMax = v
		}
	}
	if len(present) < 2 {
		return summary
	}

	summary.MovingAverage = movingAverage(s.Points, window)
	summary.Direction = a.direction(present)
	return summary
}

// movingAverage computes the trailing mean of present values at each
// position. Positions whose window holds no present value are skipped,
// not emitted as zero or NaN.
func movingAverage(points []Point, window int) []Point {
	out := make([]Point, 0, len(points))
	for i := range points {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		sum, n := 0.0, 0
		for _, p := range points[lo : i+1] {
			if p.Present {
				sum += p.Value
				n++
			}
		}
		if n == 0 {
			continue
		}
		out = append(out, Point{Date: points[i].Date, Value: sum / float64(n), Present: true})
	}
	return out
}

// direction compares the mean of the first third of present points
// against the mean of the last third.
func (a TrendAnalyzer) direction(present []float64) Direction {
	k := len(present) / 3
	if k < 1 {
		k = 1
	}
	first := mean(present[:k])
	last := mean(present[len(present)-k:])

	diff := last - first
	switch {
	case diff > a.FlatTolerance:
		return DirectionRising
	case diff < -a.FlatTolerance:
		return DirectionFalling
	default:
		return DirectionFlat
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
