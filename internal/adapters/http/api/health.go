// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"runtime"
)

// healthResponse is the body for GET /health.
type healthResponse struct {
	Status      string `json:"status"`
	MemoryUsage uint64 `json:"memory_usage"`
}

// HealthHandler handles health check requests.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HandleHealth handles GET /health requests. memory_usage reports currently
// allocated heap bytes.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		MemoryUsage: m.Alloc,
	})
}
