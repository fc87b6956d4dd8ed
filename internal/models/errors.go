// ABOUTME: Sentinel errors shared across catalog, analysis, and storage.
// ABOUTME: Callers branch on these with errors.Is.
package models

import "errors"

var (
	// ErrDuplicateMetric: the user already has a metric with this name.
	ErrDuplicateMetric = errors.New("metric already defined")

	// ErrInvalidDomain: metric bounds are inconsistent (min > max, empty scale).
	ErrInvalidDomain = errors.New("invalid metric domain")

	// ErrValueOutOfDomain: a quantitative value is not a number or outside bounds.
	ErrValueOutOfDomain = errors.New("value outside metric domain")

	// ErrInvalidRating: a qualitative value is not one of the declared scale points.
	ErrInvalidRating = errors.New("rating not on metric scale")

	// ErrUnknownMetric: no metric with that id or name exists for the user.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrInvalidRange: a date range with end before start.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrInsufficientData: too few aligned observations to analyze. This is a
	// reportable outcome, not a fault; results carry the sample size alongside.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrStoreUnavailable: the backing store failed mid-operation. The core
	// never retries; partial results are discarded.
	ErrStoreUnavailable = errors.New("store unavailable")
)
