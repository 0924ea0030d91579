// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/sibyl/internal/domain/model"
)

// PredictHandler handles prediction requests.
type PredictHandler struct {
	deps Dependencies
}

// NewPredictHandler creates a new predict handler.
func NewPredictHandler(deps Dependencies) *PredictHandler {
	return &PredictHandler{deps: deps}
}

// HandlePredict handles POST /predict requests.
// Dimension mismatches map to 400; any other scoring failure maps to 500
// with the error string as detail.
func (h *PredictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	const op = "api.predict"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	result, err := h.deps.Predict(r.Context(), model.FeatureVector(req.Features), req.ModelName)
	if err != nil {
		if errors.Is(err, model.ErrDimensionMismatch) {
			// Surface the mismatch message verbatim, e.g. "expected 10
			// features, got 3".
			writeError(w, http.StatusBadRequest, "dimension_mismatch", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{
		Prediction: result.Prediction,
		Confidence: result.Confidence,
		Timestamp:  result.Timestamp.Format(time.RFC3339Nano),
	})
}
