// Package model contains domain models passed between layers.
package model

import "time"

// FeatureVector is the ordered numeric input a caller submits for scoring.
// It lives for a single request.
type FeatureVector []float64

// Validate checks the vector against the expected dimensionality. It returns
// the unchanged vector semantics: nil on a match, a *DimensionMismatchError
// otherwise. No other range constraints are enforced.
func (v FeatureVector) Validate(expected int) error {
	if len(v) != expected {
		return &DimensionMismatchError{Expected: expected, Actual: len(v)}
	}
	return nil
}

// Prediction is the scoring outcome returned to clients. Created fresh per
// request; never persisted.
type Prediction struct {
	Prediction float64   `json:"prediction"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"timestamp"`
}
