package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krafty-kitchen/api/internal/cart"
	"github.com/krafty-kitchen/api/internal/enum"
	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/storage"
)

const (
	tokenPrefix = "HCN-"

	// TokenDateLayout is the calendar-date format persisted alongside the
	// token counter to detect day rollovers.
	TokenDateLayout = "2006-01-02"

	defaultWaitMinutes = 10
	minWaitMinutes     = 5
)

// OrderService owns order creation, status transitions and token
// numbering. It performs no input validation of its own: callers enforce
// non-empty carts and contact formats before invoking it, and status
// updates overwrite unconditionally (the intended transition graph lives
// in enum and only drives client affordance).
type OrderService struct {
	store storage.Store
	now   func() time.Time
}

// NewOrderService creates an OrderService over the given store.
func NewOrderService(store storage.Store) *OrderService {
	return NewOrderServiceWithClock(store, time.Now)
}

// NewOrderServiceWithClock is NewOrderService with an injectable clock,
// used by tests to cross day boundaries.
func NewOrderServiceWithClock(store storage.Store, now func() time.Time) *OrderService {
	return &OrderService{store: store, now: now}
}

// CreateOrderRequest is the input for creating an order.
type CreateOrderRequest struct {
	TableID       string
	Items         []model.CartItem
	PaymentMethod string
	Customer      model.CustomerDetails
}

// Create issues a token, snapshots the submitted lines and persists a new
// PENDING order. Duplicate lines for the same item and variant are merged
// before the total is computed, and the total is always the sum of
// price times quantity over the stored lines.
func (s *OrderService) Create(req CreateOrderRequest) (model.Order, error) {
	orders, err := s.List()
	if err != nil {
		return model.Order{}, err
	}

	token, err := s.nextToken()
	if err != nil {
		return model.Order{}, err
	}

	lines := cart.Merge(req.Items)

	customer := req.Customer
	if customer.Name == "" {
		customer.Name = "Guest"
	}
	if customer.Phone == "" {
		customer.Phone = "N/A"
	}
	if customer.Address == "" {
		customer.Address = "Dine-in"
	}

	method := req.PaymentMethod
	if method == "" {
		method = enum.PaymentMethodCash
	}
	paymentStatus := enum.PaymentStatusPending
	if method == enum.PaymentMethodOnline {
		paymentStatus = enum.PaymentStatusPaid
	}

	tableID := req.TableID
	if tableID == "" {
		tableID = "0"
	}

	order := model.Order{
		ID:            uuid.NewString(),
		Token:         token,
		TableID:       tableID,
		Customer:      customer,
		Items:         lines,
		TotalAmount:   cart.Total(lines),
		Status:        enum.OrderStatusPending,
		PaymentStatus: paymentStatus,
		PaymentMethod: method,
		CreatedAt:     s.now(),
		EstimatedTime: defaultWaitMinutes,
	}

	orders = append(orders, order)
	if err := storage.WriteJSON(s.store, storage.KeyOrders, orders); err != nil {
		return model.Order{}, fmt.Errorf("persist orders: %w", err)
	}
	return order, nil
}

// nextToken issues the next daily token. The counter resets to 1 on the
// first order of a new local calendar day, otherwise increments. Padding
// is a minimum width: counters past 999 keep all their digits.
func (s *OrderService) nextToken() (string, error) {
	var lastDate string
	if err := storage.ReadJSON(s.store, storage.KeyTokenDate, &lastDate); err != nil {
		return "", err
	}
	var counter int
	if err := storage.ReadJSON(s.store, storage.KeyTokenCounter, &counter); err != nil {
		return "", err
	}

	today := s.now().Format(TokenDateLayout)
	if lastDate != today {
		counter = 1
		if err := storage.WriteJSON(s.store, storage.KeyTokenDate, today); err != nil {
			return "", fmt.Errorf("persist token date: %w", err)
		}
	} else {
		counter++
	}
	if err := storage.WriteJSON(s.store, storage.KeyTokenCounter, counter); err != nil {
		return "", fmt.Errorf("persist token counter: %w", err)
	}

	return fmt.Sprintf("%s%03d", tokenPrefix, counter), nil
}

// UpdateStatus overwrites the order's status. Unknown ids are a silent
// no-op; no transition checking happens here.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	orders, err := s.List()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			return storage.WriteJSON(s.store, storage.KeyOrders, orders)
		}
	}
	return nil
}

// UpdateWaitTime sets the order's estimated wait, floored at five
// minutes. Unknown ids are a silent no-op.
func (s *OrderService) UpdateWaitTime(orderID string, minutes int) error {
	if minutes < minWaitMinutes {
		minutes = minWaitMinutes
	}
	orders, err := s.List()
	if err != nil {
		return err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].EstimatedTime = minutes
			return storage.WriteJSON(s.store, storage.KeyOrders, orders)
		}
	}
	return nil
}

// Get returns the order with the given id; ok is false when absent.
func (s *OrderService) Get(orderID string) (model.Order, bool, error) {
	orders, err := s.List()
	if err != nil {
		return model.Order{}, false, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, true, nil
		}
	}
	return model.Order{}, false, nil
}

// List returns every stored order in insertion order. Callers filter,
// sort and slice as needed.
func (s *OrderService) List() ([]model.Order, error) {
	var orders []model.Order
	if err := storage.ReadJSON(s.store, storage.KeyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
