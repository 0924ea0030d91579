package registry

import "errors"

// Sentinel kinds for registry errors.
var (
	ErrEmptyName         = errors.New("model name must not be empty")
	ErrNilScorer         = errors.New("scorer must not be nil")
	ErrAlreadyRegistered = errors.New("model already registered")
	ErrNoDefaultModel    = errors.New("default model not registered")
)
