package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dataincloud/resource-api/internal/api/shared"
	"github.com/dataincloud/resource-api/internal/platform/logger"
)

// Pinger is implemented by every backing store that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether every backing store is reachable.
type HealthHandler struct {
	checks map[string]Pinger
	names  []string
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler pinging each named store.
func NewHealthHandler(checks map[string]Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return &HealthHandler{
		checks: checks,
		names:  names,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Health handles GET /health requests
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	for _, name := range h.names {
		if err := h.checks[name].Ping(r.Context()); err != nil {
			log.Warn("health check failed", slog.String("store", name))
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				name+" store unavailable", err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Error("failed to write health check response", "error", err)
	}
}
