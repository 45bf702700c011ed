package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/krafty-kitchen/api/internal/enum"
	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/service"
)

// Input validation lives here, at the view boundary: the order store
// itself persists whatever it is given.
var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc *service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// RegisterRoutes registers order endpoints on the given Chi router.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Patch("/{id}/status", h.UpdateStatus)
	r.Patch("/{id}/wait-time", h.UpdateWaitTime)
}

// --- Request / Response types ---

type createOrderRequest struct {
	TableID       string                `json:"tableId"`
	PaymentMethod string                `json:"paymentMethod"`
	Customer      model.CustomerDetails `json:"customerDetails"`
	Items         []createOrderLine     `json:"items"`
}

type createOrderLine struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Variant    string          `json:"variant"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type updateWaitTimeRequest struct {
	Minutes int `json:"minutes"`
}

// orderResponse is the stored order plus the statuses it may move to
// next under the intended lifecycle graph, so clients can render only
// legal actions.
type orderResponse struct {
	model.Order
	NextStatuses []string `json:"nextStatuses"`
}

func toOrderResponse(o model.Order) orderResponse {
	next := enum.NextStatuses(o.Status)
	if next == nil {
		next = []string{}
	}
	return orderResponse{Order: o, NextStatuses: next}
}

// --- Handlers ---

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "items are required"})
		return
	}
	for i, item := range req.Items {
		if item.MenuItemID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": formatItemError(i, "menuItemId is required"),
			})
			return
		}
		if item.Quantity <= 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": formatItemError(i, "quantity must be > 0"),
			})
			return
		}
		if !enum.IsValidVariant(item.Variant) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": formatItemError(i, "variant must be Full or Half"),
			})
			return
		}
	}
	if req.Customer.Phone != "" && !phonePattern.MatchString(req.Customer.Phone) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "phone must be a 10-digit number"})
		return
	}
	if req.PaymentMethod != "" &&
		req.PaymentMethod != enum.PaymentMethodCash &&
		req.PaymentMethod != enum.PaymentMethodOnline {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid paymentMethod"})
		return
	}

	lines := make([]model.CartItem, len(req.Items))
	for i, item := range req.Items {
		lines[i] = model.CartItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Variant:    item.Variant,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	order, err := h.svc.Create(service.CreateOrderRequest{
		TableID:       req.TableID,
		Items:         lines,
		PaymentMethod: req.PaymentMethod,
		Customer:      req.Customer,
	})
	if err != nil {
		log.Printf("ERROR: create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List()
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, ok, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// UpdateStatus handles PATCH /orders/{id}/status. The status value must
// be a member of the enum but any transition is accepted; the intended
// graph is advisory only.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if !enum.IsValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.UpdateStatus(id, req.Status); err != nil {
		log.Printf("ERROR: update order status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	order, ok, err := h.svc.Get(id)
	if err != nil {
		log.Printf("ERROR: get order after status update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// UpdateWaitTime handles PATCH /orders/{id}/wait-time. The stored wait
// time is floored at five minutes.
func (h *OrderHandler) UpdateWaitTime(w http.ResponseWriter, r *http.Request) {
	var req updateWaitTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.UpdateWaitTime(id, req.Minutes); err != nil {
		log.Printf("ERROR: update wait time: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	order, ok, err := h.svc.Get(id)
	if err != nil {
		log.Printf("ERROR: get order after wait time update: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

// --- Helpers ---

func formatItemError(idx int, msg string) string {
	return "items[" + strconv.Itoa(idx) + "]: " + msg
}
