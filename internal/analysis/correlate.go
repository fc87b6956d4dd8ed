// ABOUTME: Pairwise correlation across heterogeneous metric kinds.
// ABOUTME: Pearson for numeric pairs, Spearman once ratings are involved.
package analysis

import (
	"fmt"
	"math"

	"github.com/scandolo/life-tracker/internal/models"
)

// Method names the correlation statistic used.
type Method string

const (
	MethodPearson  Method = "pearson"
	MethodSpearman Method = "spearman"
)

// Strength buckets the magnitude of a coefficient.
type Strength string

const (
	StrengthNegligible   Strength = "negligible"
	StrengthWeak         Strength = "weak"
	StrengthModerate     Strength = "moderate"
	StrengthStrong       Strength = "strong"
	StrengthVeryStrong   Strength = "very strong"
	StrengthUndetermined Strength = "undetermined"
)

// Reason explains why a result carries no coefficient. Results never
// smuggle sentinel numbers; omissions are always named.
type Reason string

const (
	ReasonOK               Reason = "ok"
	ReasonInsufficientData Reason = "insufficient_data"
	ReasonZeroVariance     Reason = "zero_variance"
)

// MinSampleSize is the smallest aligned sample a correlation is computed over.
const MinSampleSize = 3

// StrengthBand maps an exclusive upper bound on |coefficient| to a label.
type StrengthBand struct {
	Max   float64
	Label Strength
}

// DefaultStrengthBands are the standard |r| buckets.
var DefaultStrengthBands = []StrengthBand{
	{Max: 0.2, Label: StrengthNegligible},
	{Max: 0.4, Label: StrengthWeak},
	{Max: 0.6, Label: StrengthModerate},
	{Max: 0.8, Label: StrengthStrong},
}

// CorrelationResult is the outcome of a pairwise association analysis.
// Coefficient is nil when the sample is too small or degenerate; Reason
// says which.
type CorrelationResult struct {
	Coefficient *float64
	Method      Method
	SampleSize  int
	Strength    Strength
	Reason      Reason
}

// Engine computes pairwise correlation over aligned series.
// The zero value uses the default strength bands.
type Engine struct {
	Bands []StrengthBand
}

// Correlate computes the association between the two series of an
// aligned pair over the dates where both are present.
//
// Method selection by kind pairing: quantitative x quantitative uses
// Pearson; any pairing involving a qualitative metric uses Spearman,
// because ratings are ordinal and must not enter a linear correlation
// as if they were interval values.
//
// With fewer than MinSampleSize aligned samples the result carries a
// nil coefficient and the returned error wraps models.ErrInsufficientData;
// callers report it, they do not treat it as a fault. A constant series
// yields a nil coefficient with ReasonZeroVariance and no error.
func (e Engine) Correlate(pair AlignedPair) (CorrelationResult, error) {
	method := MethodPearson
	if pair.A.Kind == models.KindQualitative || pair.B.Kind == models.KindQualitative {
		method = MethodSpearman
	}

	xs, ys := pair.JointValues()
	result := CorrelationResult{
		Method:     method,
		SampleSize: len(xs),
		Strength:   StrengthUndetermined,
		Reason:     ReasonOK,
	}

	if len(xs) < MinSampleSize {
		result.Reason = ReasonInsufficientData
		return result, fmt.Errorf("correlate %q with %q: %d aligned samples, need %d: %w",
			pair.A.Name, pair.B.Name, len(xs), MinSampleSize, models.ErrInsufficientData)
	}

	if method == MethodSpearman {
		xs = ranks(xs)
		ys = ranks(ys)
	}

	r, ok := pearson(xs, ys)
	if !ok {
		result.Reason = ReasonZeroVariance
		return result, nil
	}

	// Guard against float drift pushing |r| past 1.
	r = math.Max(-1, math.Min(1, r))
	result.Coefficient = &r
	result.Strength = e.strength(r)
	return result, nil
}

// pearson computes the linear correlation coefficient. ok is false when
// either side has zero variance.
func pearson(xs, ys []float64) (r float64, ok bool) {
	mx, my := mean(xs), mean(ys)

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - mx
		dy := ys[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}

func (e Engine) strength(r float64) Strength {
	bands := e.Bands
	if bands == nil {
		bands = DefaultStrengthBands
	}
	abs := math.Abs(r)
	for _, b := range bands {
		if abs < b.Max {
			return b.Label
		}
	}
	return StrengthVeryStrong
}
