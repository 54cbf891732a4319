package handlers

import (
	"net/http"
	"time"

	"github.com/bazarna-store/api/internal/platform/kv"
)

var startTime = time.Now()

// HealthHandlers serves the liveness and readiness probes.
type HealthHandlers struct {
	store kv.Store
}

// NewHealthHandlers constructs the probe handlers. A nil store makes the
// readiness probe unconditionally ready.
func NewHealthHandlers(store kv.Store) *HealthHandlers {
	return &HealthHandlers{store: store}
}

// Healthz responds with a simple status payload for liveness monitoring.
func (h *HealthHandlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(startTime).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Readyz reports ready once the persistence backend answers. Key absence is
// an answer; only transport failures mark the service unready.
func (h *HealthHandlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if _, err := h.store.Get(r.Context(), "healthcheck"); err != nil && !kv.IsNotFound(err) {
			writeJSONResponse(w, http.StatusServiceUnavailable, map[string]any{
				"status": "unavailable",
				"reason": err.Error(),
			})
			return
		}
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{"status": "ready"})
}
