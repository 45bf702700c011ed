package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krafty-kitchen/api/internal/service"
)

// StatsHandler serves the derived financial read model.
type StatsHandler struct {
	svc *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// RegisterRoutes registers stats endpoints on the given Chi router.
func (h *StatsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
}

// Get handles GET /stats. Figures are recomputed from the stored
// collections on every request; clients poll this endpoint.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Snapshot()
	if err != nil {
		log.Printf("ERROR: compute stats: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
