package loadtest

import (
	"context"
	"fmt"
	"log"
)

// verifyDeterminism submits the same feature vector repeatedly and checks
// that the service returns identical predictions each time. The weight
// vector is fixed at startup, so any drift is a service defect.
func verifyDeterminism(ctx context.Context, config *Config) error {
	log.Println("🔍 Verifying prediction determinism...")

	const repeats = 5

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/predict"

	probe := generateSingleRequest(config.Dimension, config.ModelName)

	results := make([]PredictResponse, 0, repeats)
	for i := 0; i < repeats; i++ {
		resp, err := client.Post(ctx, url, predictBody{
			Features:  probe.Features,
			ModelName: probe.ModelName,
		}, probe.RequestID)
		if err != nil {
			return fmt.Errorf("determinism probe %d failed: %w", i, err)
		}

		body, err := readResponseBody(resp)
		_ = resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read probe %d response: %w", i, err)
		}

		if resp.StatusCode != StatusOK {
			return fmt.Errorf("determinism probe %d returned status %d", i, resp.StatusCode)
		}

		var prediction PredictResponse
		if err := unmarshalJSON(body, &prediction); err != nil {
			return fmt.Errorf("failed to parse probe %d response: %w", i, err)
		}
		results = append(results, prediction)
	}

	first := results[0]
	for i := 1; i < len(results); i++ {
		if results[i].Prediction != first.Prediction {
			return fmt.Errorf("prediction drifted between probes: %.12f vs %.12f",
				first.Prediction, results[i].Prediction)
		}
		if results[i].Confidence != first.Confidence {
			return fmt.Errorf("confidence drifted between probes: %.12f vs %.12f",
				first.Confidence, results[i].Confidence)
		}
	}

	log.Printf("✅ Determinism verified: %d identical predictions (prediction: %.6f, confidence: %.3f)",
		repeats, first.Prediction, first.Confidence)
	return nil
}

// verifyResults checks the submission counters for consistency.
func verifyResults(_ context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	if stats.RequestsSubmitted == 0 {
		return fmt.Errorf("no requests were submitted")
	}

	if stats.ConfidenceViolated > 0 {
		return fmt.Errorf("%d responses carried a confidence outside [0, %.2f]",
			stats.ConfidenceViolated, ConfidenceCeiling)
	}

	// All generated vectors have the configured dimension, so rejections
	// indicate a disagreement about the expected length.
	if stats.RequestsRejected > 0 {
		log.Printf("⚠️  %d requests were rejected; check that -dimension matches the service model", stats.RequestsRejected)
	}

	accounted := stats.RequestsSuccessful + stats.RequestsRejected + stats.RequestsFailed
	if accounted != stats.RequestsSubmitted {
		return fmt.Errorf("counter mismatch: %d submitted but %d accounted for",
			stats.RequestsSubmitted, accounted)
	}

	if config.Verbose {
		log.Printf(`📊 Outcome breakdown:
   Successful: %d
   Rejected: %d
   Failed: %d
`, stats.RequestsSuccessful, stats.RequestsRejected, stats.RequestsFailed)
	}

	log.Println("✅ Result verification completed")
	return nil
}
