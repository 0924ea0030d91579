// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default configuration values.
const (
	defaultAddr           = ":8000"
	defaultModelDimension = 10
	defaultModelName      = "linear"
	defaultServiceName    = "sibyl"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	// The PORT environment variable, when set, takes precedence.
	Addr string `koanf:"addr"`

	// ServiceName is reported by GET / and used in log fields.
	ServiceName string `koanf:"service_name"`

	// ModelDimension is the expected feature vector length.
	ModelDimension int `koanf:"model_dimension"`

	// ModelSeed seeds weight initialization. Zero means a random seed,
	// matching the throwaway-model behavior; set it for reproducible runs.
	ModelSeed int64 `koanf:"model_seed"`

	// DefaultModel is the model used when requests omit model_name.
	DefaultModel string `koanf:"default_model"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           defaultAddr,
		ServiceName:    defaultServiceName,
		ModelDimension: defaultModelDimension,
		ModelSeed:      0,
		DefaultModel:   defaultModelName,
	}
}
