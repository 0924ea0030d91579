package loadtest

import "time"

// Config holds configuration for the prediction load test
type Config struct {
	BaseURL     string        // Base URL of the service
	NumRequests int           // Number of requests to generate
	Workers     int           // Number of concurrent workers
	Timeout     time.Duration // HTTP request timeout
	Dimension   int           // Feature vector length
	ModelName   string        // Model name to request (empty for default)
	OutputFile  string        // Output file for generated requests
	LogFile     string        // Log file for test output
	Verbose     bool          // Enable verbose logging
}

// Request represents a prediction request to be submitted
type Request struct {
	RequestID string    `json:"request_id"`
	Features  []float64 `json:"features"`
	ModelName string    `json:"model_name,omitempty"`
}

// PredictResponse represents the response from a prediction
type PredictResponse struct {
	Prediction float64 `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// ErrorResponse represents an error body from the service
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Stats holds test statistics
type Stats struct {
	RequestsGenerated  int
	RequestsSubmitted  int
	RequestsSuccessful int
	RequestsRejected   int
	RequestsFailed     int
	ConfidenceViolated int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
