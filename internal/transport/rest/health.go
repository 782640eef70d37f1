package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// readinessChecker defines the minimal interface for health checks.
type readinessChecker interface {
	Ready(ctx context.Context) error
	Count() int
	ManifestSummary() domain.ManifestSummary
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checker readinessChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(checker readinessChecker, version string) *HealthHandler {
	return &HealthHandler{checker: checker, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 once the manifest is loaded, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.checker.Ready(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: manifest contents, live sessions and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.checker.Ready(ctx)
	latency := time.Since(start)

	if err != nil {
		components["manifest"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["manifest"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
			Details: h.checker.ManifestSummary(),
		}
	}
	components["sessions"] = CompStatus{
		Status:  "ok",
		Details: map[string]int{"active": h.checker.Count()},
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
