// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/sibyl/internal/domain/model"
	"github.com/okian/sibyl/internal/domain/registry"
	"github.com/okian/sibyl/internal/domain/scoring"
	"github.com/okian/sibyl/pkg/logger"
	"github.com/okian/sibyl/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultModelName = "linear"
)

// Service owns the model registry and orchestrates the predict path.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry registry.Registry

	// Configuration
	dimension    int
	seed         int64
	weights      []float64
	defaultModel string

	// State
	started   bool
	startTime time.Time

	// Counters for GET /stats
	predictions        atomic.Int64
	validationFailures atomic.Int64
	predictionErrors   atomic.Int64

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDimension sets the expected feature vector length.
func WithDimension(dim int) Option {
	return func(s *Service) {
		if dim > 0 {
			s.dimension = dim
		}
	}
}

// WithSeed fixes the seed used for weight initialization.
func WithSeed(seed int64) Option {
	return func(s *Service) {
		s.seed = seed
	}
}

// WithWeights injects explicit model weights, bypassing random
// initialization. Intended for tests that need deterministic predictions.
func WithWeights(weights []float64) Option {
	return func(s *Service) {
		if len(weights) > 0 {
			s.weights = weights
		}
	}
}

// WithDefaultModel sets the model name registered and used as fallback.
func WithDefaultModel(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.defaultModel = name
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dimension:    scoring.DefaultDimension,
		defaultModel: defaultModelName,
		logger:       nil, // resolved at Start
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the scorer and registry. The weight vector is fixed here and
// never reloaded; calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting prediction service...")

	scorerOpts := []scoring.Option{scoring.WithDimension(s.dimension)}
	if len(s.weights) > 0 {
		scorerOpts = append(scorerOpts, scoring.WithWeights(s.weights))
	} else if s.seed != 0 {
		scorerOpts = append(scorerOpts, scoring.WithSeed(s.seed))
	}
	scorer := scoring.NewLinearScorer(scorerOpts...)

	s.registry = registry.NewInMemoryRegistry(
		registry.WithDefaultModel(s.defaultModel),
	)
	if err := s.registry.Register(ctx, s.defaultModel, scorer); err != nil {
		return err
	}

	s.started = true
	s.startTime = time.Now()

	metrics.UpdateModelDimension(scorer.Dimension())
	metrics.UpdateRegisteredModels(s.registry.Size())

	s.logger.Info(ctx, "prediction service started",
		logger.String("defaultModel", s.defaultModel),
		logger.Int("dimension", scorer.Dimension()),
	)

	return nil
}

// Stop shuts the service down. There are no background resources to release;
// this exists for symmetry with graceful shutdown.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "prediction service stopped")
}

// Predict resolves the requested model and scores the feature vector.
// The result is stamped with the current UTC time.
func (s *Service) Predict(ctx context.Context, features model.FeatureVector, modelName string) (model.Prediction, error) {
	s.mu.RLock()
	started := s.started
	reg := s.registry
	s.mu.RUnlock()

	if !started {
		return model.Prediction{}, ErrNotStarted
	}

	scorer, exact, err := reg.Resolve(ctx, modelName)
	if err != nil {
		s.predictionErrors.Add(1)
		metrics.RecordPredictionError()
		return model.Prediction{}, err
	}
	if !exact && modelName != "" {
		s.logger.Debug(ctx, "unknown model requested; using default",
			logger.String("modelName", modelName),
			logger.String("defaultModel", s.defaultModel),
		)
	}

	start := time.Now()
	result, err := scorer.Predict(ctx, features)
	latencyMs := float64(time.Since(start).Microseconds()) / 1e3

	if err != nil {
		var mismatch *model.DimensionMismatchError
		if errors.As(err, &mismatch) {
			s.validationFailures.Add(1)
			metrics.RecordValidationFailure()
		} else {
			s.predictionErrors.Add(1)
			metrics.RecordPredictionError()
		}
		return model.Prediction{}, err
	}

	s.predictions.Add(1)
	metrics.RecordPrediction()
	metrics.RecordPredictionLatency(latencyMs)
	metrics.ObserveConfidence(result.Confidence)

	return model.Prediction{
		Prediction: result.Prediction,
		Confidence: result.Confidence,
		Timestamp:  time.Now().UTC(),
	}, nil
}

// ModelDimension reports the expected feature vector length of the default
// model, or zero before Start.
func (s *Service) ModelDimension() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.started {
		return 0
	}
	scorer, _, err := s.registry.Resolve(context.Background(), s.defaultModel)
	if err != nil {
		return 0
	}
	return scorer.Dimension()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":             s.started,
		"default_model":       s.defaultModel,
		"predictions":         s.predictions.Load(),
		"validation_failures": s.validationFailures.Load(),
		"prediction_errors":   s.predictionErrors.Load(),
	}

	if s.started {
		stats["models"] = s.registry.Names(context.Background())
		stats["uptime_seconds"] = int64(time.Since(s.startTime).Seconds())

		metrics.UpdateRegisteredModels(s.registry.Size())
	}

	return stats
}
