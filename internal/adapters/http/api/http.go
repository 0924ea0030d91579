// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/sibyl/internal/domain/model"
	"github.com/okian/sibyl/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Predict scores a feature vector with the named model. An empty model
	// name selects the default model.
	Predict(ctx context.Context, features model.FeatureVector, modelName string) (model.Prediction, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	rootHandler    *RootHandler
	healthHandler  *HealthHandler
	predictHandler *PredictHandler
	statsHandler   *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, serviceName string) *Server {
	return &Server{
		rootHandler:    NewRootHandler(serviceName),
		healthHandler:  NewHealthHandler(),
		predictHandler: NewPredictHandler(deps),
		statsHandler:   NewStatsHandler(statsProvider),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first; "/" doubles as the catch-all and 404s anything
	// it does not recognize.
	mux.HandleFunc("/health", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "health")))
	mux.HandleFunc("/predict", RequestIDMiddleware(MetricsMiddleware(s.predictHandler.HandlePredict, "predict")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("/", RequestIDMiddleware(MetricsMiddleware(s.rootHandler.HandleRoot, "root")))
}

// predictRequest mirrors the OpenAPI schema for POST /predict.
type predictRequest struct {
	Features  []float64 `json:"features"`
	ModelName string    `json:"model_name"`
}

// predictResponse mirrors the OpenAPI schema for the /predict success body.
type predictResponse struct {
	Prediction float64 `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

type errorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	detail := http.StatusText(status)
	if err != nil {
		detail = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Detail: detail})
}
