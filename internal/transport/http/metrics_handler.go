package http

import (
	"net/http"

	"github.com/go-chi/render"
)

// MetricsHandler serves the Prometheus exposition
type MetricsHandler struct {
	exposition http.Handler
}

// NewMetricsHandler wraps the Prometheus handler. A nil handler means metrics
// are disabled.
func NewMetricsHandler(exposition http.Handler) *MetricsHandler {
	return &MetricsHandler{exposition: exposition}
}

// ServeHTTP handles GET /metrics
func (h *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.exposition == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]interface{}{
			"status":  "disabled",
			"message": "metrics exporter is not enabled",
		})
		return
	}
	h.exposition.ServeHTTP(w, r)
}
