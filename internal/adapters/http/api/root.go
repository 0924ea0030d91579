// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"time"
)

// rootResponse is the body for GET /.
type rootResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RootHandler handles service identity requests.
type RootHandler struct {
	serviceName string
}

// NewRootHandler creates a new root handler.
func NewRootHandler(serviceName string) *RootHandler {
	return &RootHandler{serviceName: serviceName}
}

// HandleRoot handles GET / requests. Because "/" is the mux catch-all,
// any unknown path lands here and gets a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Service:   h.serviceName,
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}
