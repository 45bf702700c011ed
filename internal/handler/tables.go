package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/service"
)

// TableHandler handles table catalog endpoints.
type TableHandler struct {
	svc *service.TableService
}

// NewTableHandler creates a new TableHandler.
func NewTableHandler(svc *service.TableService) *TableHandler {
	return &TableHandler{svc: svc}
}

// RegisterRoutes registers table endpoints on the given Chi router.
func (h *TableHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
}

// List handles GET /tables.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.svc.List()
	if err != nil {
		log.Printf("ERROR: list tables: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if tables == nil {
		tables = []model.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}
