package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}, requestID string) (*http.Response, error) {
	jsonData, err := marshalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	return c.client.Do(req)
}

// marshalJSON marshals a struct to JSON
func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// unmarshalJSON unmarshals JSON to a struct
func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// readResponseBody reads the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}

// predictBody is sent to POST /predict. The request id travels in the
// X-Request-ID header, not the body.
type predictBody struct {
	Features  []float64 `json:"features"`
	ModelName string    `json:"model_name,omitempty"`
}

// submitRequests submits prediction requests concurrently using worker pools
func submitRequests(ctx context.Context, config *Config, requests []Request, stats *Stats) error {
	log.Printf("📤 Submitting %d requests with %d workers...", len(requests), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/predict"

	// Counters for statistics
	var (
		successful int64
		rejected   int64
		failed     int64
		submitted  int64
		violated   int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	requestChan := make(chan Request, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for request := range requestChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleRequest(ctx, client, url, request)

					// Update counters
					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "rejected":
						atomic.AddInt64(&rejected, 1)
					case "violated":
						atomic.AddInt64(&successful, 1)
						atomic.AddInt64(&violated, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						rej := atomic.LoadInt64(&rejected)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, rejected: %d, failed: %d)",
								total, len(requests), succ, rej, fail)
						} else {
							fmt.Printf("\r📤 Submitted: %d/%d (success: %d, rejected: %d, failed: %d)",
								total, len(requests), succ, rej, fail)
						}
					}
				}
			}
		}()
	}

	// Send requests to workers
	go func() {
		defer close(requestChan)
		for _, request := range requests {
			select {
			case <-ctx.Done():
				return
			case requestChan <- request:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.RequestsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RequestsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RequestsRejected = int(atomic.LoadInt64(&rejected))
	stats.RequestsFailed = int(atomic.LoadInt64(&failed))
	stats.ConfidenceViolated = int(atomic.LoadInt64(&violated))

	log.Printf(`✅ Request submission completed:
   Successful: %d
   Rejected: %d
   Failed: %d
   Confidence violations: %d
`, stats.RequestsSuccessful, stats.RequestsRejected, stats.RequestsFailed, stats.ConfidenceViolated)

	return nil
}

// submitSingleRequest submits a single prediction request and returns the result
func submitSingleRequest(ctx context.Context, client *HTTPClient, url string, request Request) string {
	body := predictBody{
		Features:  request.Features,
		ModelName: request.ModelName,
	}

	resp, err := client.Post(ctx, url, body, request.RequestID)
	if err != nil {
		return "failed"
	}
	defer resp.Body.Close()

	respBody, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	// Parse response based on status code
	switch resp.StatusCode {
	case StatusOK:
		var prediction PredictResponse
		if err := unmarshalJSON(respBody, &prediction); err != nil {
			return "failed"
		}
		if prediction.Confidence < 0 || prediction.Confidence > ConfidenceCeiling {
			return "violated"
		}
		return "success"
	case StatusBadRequest:
		// Rejected - validation failure
		return "rejected"
	default:
		// Error
		return "failed"
	}
}
