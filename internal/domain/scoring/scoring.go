// Package scoring defines the contract for computing predictions from
// feature vectors.
package scoring

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/okian/sibyl/internal/domain/model"
)

// Default scoring configuration constants.
const (
	// DefaultDimension is the expected feature vector length.
	DefaultDimension = 10

	// maxConfidence caps the confidence heuristic; confidenceDivisor scales
	// the prediction magnitude into it. The formula is ad hoc and must be
	// preserved literally: confidence = min(0.95, |prediction| / 10).
	maxConfidence     = 0.95
	confidenceDivisor = 10.0
)

// Result contains the computed prediction and its derived confidence.
type Result struct {
	Prediction float64
	Confidence float64
}

// Scorer computes a prediction from a feature vector.
type Scorer interface {
	// Predict computes a prediction, honoring ctx for cancellation.
	Predict(ctx context.Context, features model.FeatureVector) (Result, error)

	// Dimension reports the expected feature vector length.
	Dimension() int
}

// LinearScorer implements Scorer as a dot product against a weight vector
// fixed at construction. The weights are never mutated afterwards, so a
// single instance is safe for unsynchronized concurrent use.
type LinearScorer struct {
	weights []float64
}

// NewLinearScorer creates a scorer with configuration options. Without
// options the weights are drawn from a standard normal distribution at
// DefaultDimension, mimicking a freshly initialized placeholder model.
func NewLinearScorer(opts ...Option) *LinearScorer {
	cfg := &scorerConfig{
		dimension: DefaultDimension,
		seed:      time.Now().UnixNano(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	s := &LinearScorer{}
	if len(cfg.weights) > 0 {
		s.weights = make([]float64, len(cfg.weights))
		copy(s.weights, cfg.weights)
		return s
	}

	rng := rand.New(rand.NewSource(cfg.seed)) //nolint:gosec // placeholder model weights, not security material
	s.weights = make([]float64, cfg.dimension)
	for i := range s.weights {
		s.weights[i] = rng.NormFloat64()
	}
	return s
}

// Dimension reports the expected feature vector length.
func (s *LinearScorer) Dimension() int {
	return len(s.weights)
}

// Predict computes the inner product of features and weights, and a
// confidence clipped to [0, 0.95]. Deterministic given fixed weights.
func (s *LinearScorer) Predict(ctx context.Context, features model.FeatureVector) (Result, error) {
	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	default:
	}

	if err := features.Validate(len(s.weights)); err != nil {
		return Result{}, err
	}

	var prediction float64
	for i, f := range features {
		prediction += f * s.weights[i]
	}

	confidence := math.Min(maxConfidence, math.Abs(prediction)/confidenceDivisor)

	return Result{
		Prediction: prediction,
		Confidence: confidence,
	}, nil
}

// Weights returns a copy of the weight vector for inspection.
func (s *LinearScorer) Weights() []float64 {
	out := make([]float64, len(s.weights))
	copy(out, s.weights)
	return out
}
