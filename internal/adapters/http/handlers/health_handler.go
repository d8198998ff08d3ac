package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/cratedocs-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
	"github.com/jsamuelsen11/cratedocs-web/internal/ports"
)

// HealthHandler serves the orchestrator probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reporting on registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the whole
// check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.Liveness{Status: "alive"})
}

// Readiness handles GET /health/ready with 200 when every registered check
// passes and 503 otherwise. Failure details are logged, not returned.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)
	body := dto.NewReadiness(results)

	code := http.StatusOK
	if !body.Ready() {
		code = http.StatusServiceUnavailable
		for _, name := range body.Failed {
			logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
				slog.String("check", name),
				slog.Any("error", results[name]),
			)
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, body)
}
