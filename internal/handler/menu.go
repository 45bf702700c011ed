package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/service"
)

// MenuHandler handles menu catalog endpoints.
type MenuHandler struct {
	svc *service.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Delete("/{id}", h.Delete)
}

type addMenuItemRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	PriceFull   decimal.Decimal  `json:"priceFull"`
	PriceHalf   *decimal.Decimal `json:"priceHalf"`
	IsVeg       bool             `json:"isVeg"`
	Image       string           `json:"image"`
}

// List handles GET /menu.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	menu, err := h.svc.List()
	if err != nil {
		log.Printf("ERROR: list menu: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if menu == nil {
		menu = []model.MenuItem{}
	}
	writeJSON(w, http.StatusOK, menu)
}

// Add handles POST /menu.
func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}
	if !req.PriceFull.IsPositive() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "priceFull must be > 0"})
		return
	}

	item, err := h.svc.Add(model.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		PriceFull:   req.PriceFull,
		PriceHalf:   req.PriceHalf,
		IsVeg:       req.IsVeg,
		Image:       req.Image,
	})
	if err != nil {
		log.Printf("ERROR: add menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Delete handles DELETE /menu/{id}. Deleting an unknown id succeeds.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(chi.URLParam(r, "id")); err != nil {
		log.Printf("ERROR: delete menu item: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
