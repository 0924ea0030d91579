package model

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is the sentinel kind for feature vectors whose length
// does not match the model's expected input dimensionality.
var ErrDimensionMismatch = errors.New("feature dimension mismatch")

// DimensionMismatchError carries the expected and actual vector lengths.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("expected %d features, got %d", e.Expected, e.Actual)
}

// Unwrap lets callers match with errors.Is(err, ErrDimensionMismatch).
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
