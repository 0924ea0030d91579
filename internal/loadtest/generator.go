package loadtest

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/sibyl/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	featureTypeDivisor = 6
)

// Constants for feature generation ranges.
const (
	unitMin       = -1.0
	unitRange     = 2.0
	smallMin      = -0.1
	smallRange    = 0.2
	largeMin      = -10.0
	largeRange    = 20.0
	positiveMin   = 0.0
	positiveRange = 5.0
	negativeMin   = -5.0
	negativeRange = 5.0
	extremeMin    = -100.0
	extremeRange  = 200.0
)

// Constants for feature distribution cases.
const (
	caseUnitRange     = 0
	caseSmallValues   = 1
	caseLargeValues   = 2
	casePositiveOnly  = 3
	caseNegativeOnly  = 4
	caseExtremeValues = 5
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateRequests creates the specified number of prediction requests.
func generateRequests(ctx context.Context, config *Config, stats *Stats) ([]Request, error) {
	logger.Get().Info(ctx, "generating prediction requests", logger.Int("numRequests", config.NumRequests))

	requests := make([]Request, config.NumRequests)

	// Generate requests concurrently
	type requestResult struct {
		index   int
		request Request
		err     error
	}

	resultChan := make(chan requestResult, config.NumRequests)

	// Use worker pool for request generation
	workerCount := minInt(config.Workers, config.NumRequests)
	requestsPerWorker := config.NumRequests / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * requestsPerWorker
		end := start + requestsPerWorker
		if worker == workerCount-1 {
			end = config.NumRequests // Last worker gets the remainder
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- requestResult{index: i, err: ctx.Err()}
					return
				default:
					request := generateSingleRequest(config.Dimension, config.ModelName)
					resultChan <- requestResult{index: i, request: request, err: nil}
				}
			}
		}(start, end)
	}

	// Collect results
	for i := 0; i < config.NumRequests; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during request generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate request %d: %w", result.index, result.err)
			}
			requests[result.index] = result.request
		}
	}

	stats.RequestsGenerated = len(requests)
	logger.Get().Info(ctx, "generated requests successfully", logger.Int("count", len(requests)))

	return requests, nil
}

// generateSingleRequest creates a single request with a varied feature vector.
func generateSingleRequest(dimension int, modelName string) Request {
	features := make([]float64, dimension)
	for i := range features {
		features[i] = generateVariedFeature()
	}

	return Request{
		RequestID: uuid.New().String(),
		Features:  features,
		ModelName: modelName,
	}
}

// generateVariedFeature creates a feature value with varied distribution so
// that predictions span the full confidence range.
func generateVariedFeature() float64 {
	randNum, _ := rand.Int(rand.Reader, big.NewInt(featureTypeDivisor))
	switch randNum.Int64() {
	case caseUnitRange:
		// Unit range values (-1.0 - 1.0) - most common
		return unitMin + getRandomFloat()*unitRange
	case caseSmallValues:
		// Near-zero values (-0.1 - 0.1)
		return smallMin + getRandomFloat()*smallRange
	case caseLargeValues:
		// Large values (-10.0 - 10.0)
		return largeMin + getRandomFloat()*largeRange
	case casePositiveOnly:
		// Positive values (0.0 - 5.0)
		return positiveMin + getRandomFloat()*positiveRange
	case caseNegativeOnly:
		// Negative values (-5.0 - 0.0)
		return negativeMin + getRandomFloat()*negativeRange
	case caseExtremeValues:
		// Extreme values (-100.0 - 100.0) - should saturate confidence
		return extremeMin + getRandomFloat()*extremeRange
	default:
		return unitMin + getRandomFloat()*unitRange
	}
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
