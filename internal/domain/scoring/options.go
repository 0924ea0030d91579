package scoring

// scorerConfig collects construction parameters for LinearScorer.
type scorerConfig struct {
	dimension int
	seed      int64
	weights   []float64
}

// Option applies a configuration option to a new LinearScorer.
type Option func(*scorerConfig)

// WithDimension sets the weight vector length for random initialization.
func WithDimension(dim int) Option {
	return func(c *scorerConfig) {
		if dim > 0 {
			c.dimension = dim
		}
	}
}

// WithSeed fixes the random source used for weight initialization, making
// the generated weights reproducible.
func WithSeed(seed int64) Option {
	return func(c *scorerConfig) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

// WithWeights injects an explicit weight vector, bypassing random
// initialization entirely. Used by tests that need deterministic output.
func WithWeights(weights []float64) Option {
	return func(c *scorerConfig) {
		if len(weights) > 0 {
			c.weights = weights
		}
	}
}
