package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/krafty-kitchen/api/internal/service"
)

// ReportsHandler renders order and expense snapshots as CSV downloads.
// It consumes the same read APIs as every other view; no extra state.
type ReportsHandler struct {
	orders   *service.OrderService
	expenses *service.ExpenseService
	now      func() time.Time
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(orders *service.OrderService, expenses *service.ExpenseService) *ReportsHandler {
	return &ReportsHandler{orders: orders, expenses: expenses, now: time.Now}
}

// NewReportsHandlerWithClock is NewReportsHandler with an injectable
// clock for the today filter.
func NewReportsHandlerWithClock(orders *service.OrderService, expenses *service.ExpenseService, now func() time.Time) *ReportsHandler {
	return &ReportsHandler{orders: orders, expenses: expenses, now: now}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders.csv", h.OrdersCSV)
	r.Get("/expenses.csv", h.ExpensesCSV)
}

// OrdersCSV handles GET /reports/orders.csv. The period query parameter
// selects "all" history (default) or "today" since local midnight.
func (h *ReportsHandler) OrdersCSV(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "all"
	}
	if period != "all" && period != "today" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "period must be today or all"})
		return
	}

	orders, err := h.orders.List()
	if err != nil {
		log.Printf("ERROR: list orders for report: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if period == "today" {
		now := h.now()
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		filtered := orders[:0]
		for _, o := range orders {
			if !o.CreatedAt.Before(dayStart) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	filename := fmt.Sprintf("KraftyKitchen_Sales_%s_%s.csv", period, h.now().Format("2006-01-02"))
	beginCSV(w, filename)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"Date", "Time", "Token", "Customer", "Phone", "Address", "Table",
		"Items", "TotalAmount", "PaymentMethod", "PaymentStatus", "OrderStatus",
	})
	for _, o := range orders {
		items := make([]string, len(o.Items))
		for i, line := range o.Items {
			items[i] = fmt.Sprintf("%dx %s", line.Quantity, line.Name)
		}
		_ = cw.Write([]string{
			o.CreatedAt.Format("2006-01-02"),
			o.CreatedAt.Format("15:04:05"),
			o.Token,
			o.Customer.Name,
			o.Customer.Phone,
			o.Customer.Address,
			o.TableID,
			strings.Join(items, " | "),
			o.TotalAmount.String(),
			o.PaymentMethod,
			o.PaymentStatus,
			o.Status,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("ERROR: write orders report: %v", err)
	}
}

// ExpensesCSV handles GET /reports/expenses.csv.
func (h *ReportsHandler) ExpensesCSV(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.List()
	if err != nil {
		log.Printf("ERROR: list expenses for report: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	filename := fmt.Sprintf("KraftyKitchen_Expenses_%s.csv", h.now().Format("2006-01-02"))
	beginCSV(w, filename)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Date", "Category", "Description", "Amount"})
	for _, e := range expenses {
		_ = cw.Write([]string{
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Description,
			e.Amount.String(),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("ERROR: write expenses report: %v", err)
	}
}

func beginCSV(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
}
