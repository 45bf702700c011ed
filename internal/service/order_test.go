package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/krafty-kitchen/api/internal/enum"
	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/service"
	"github.com/krafty-kitchen/api/internal/storage"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func noodlesLine(qty int) model.CartItem {
	return model.CartItem{
		MenuItemID: "2",
		Name:       "Hakka Noodles",
		Variant:    enum.VariantFull,
		Price:      decimal.NewFromInt(220),
		Quantity:   qty,
	}
}

func TestCreate_Defaults(t *testing.T) {
	store := storage.NewMemory()
	now := time.Date(2025, 3, 15, 12, 30, 0, 0, time.UTC)
	svc := service.NewOrderServiceWithClock(store, fixedClock(now))

	order, err := svc.Create(service.CreateOrderRequest{
		TableID:       "table-3",
		Items:         []model.CartItem{noodlesLine(2)},
		PaymentMethod: enum.PaymentMethodCash,
		Customer:      model.CustomerDetails{Name: "Asha", Phone: "9876543210", Address: "MG Road"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if order.ID == "" {
		t.Error("expected generated id")
	}
	if order.Token != "HCN-001" {
		t.Errorf("token: got %s, want HCN-001", order.Token)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("status: got %s, want PENDING", order.Status)
	}
	if order.PaymentStatus != enum.PaymentStatusPending {
		t.Errorf("payment status: got %s, want PENDING for cash", order.PaymentStatus)
	}
	if order.EstimatedTime != 10 {
		t.Errorf("estimated time: got %d, want 10", order.EstimatedTime)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(440)) {
		t.Errorf("total: got %s, want 440", order.TotalAmount)
	}
	if !order.CreatedAt.Equal(now) {
		t.Errorf("createdAt: got %v, want %v", order.CreatedAt, now)
	}
}

func TestCreate_OnlinePaymentIsSettledImmediately(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())

	order, err := svc.Create(service.CreateOrderRequest{
		Items:         []model.CartItem{noodlesLine(1)},
		PaymentMethod: enum.PaymentMethodOnline,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.PaymentStatus != enum.PaymentStatusPaid {
		t.Errorf("payment status: got %s, want PAID for online", order.PaymentStatus)
	}
}

func TestCreate_GuestFallbacks(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())

	order, err := svc.Create(service.CreateOrderRequest{
		Items: []model.CartItem{noodlesLine(1)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Customer.Name != "Guest" || order.Customer.Phone != "N/A" || order.Customer.Address != "Dine-in" {
		t.Errorf("customer fallbacks: got %+v", order.Customer)
	}
	if order.TableID != "0" {
		t.Errorf("table fallback: got %s, want 0", order.TableID)
	}
	if order.PaymentMethod != enum.PaymentMethodCash {
		t.Errorf("payment method fallback: got %s, want CASH", order.PaymentMethod)
	}
}

func TestCreate_MergesDuplicateLines(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())

	order, err := svc.Create(service.CreateOrderRequest{
		Items: []model.CartItem{noodlesLine(1), noodlesLine(1)},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(order.Items) != 1 {
		t.Fatalf("lines: got %d, want 1 merged line", len(order.Items))
	}
	if order.Items[0].Quantity != 2 {
		t.Errorf("quantity: got %d, want 2", order.Items[0].Quantity)
	}
	if !order.TotalAmount.Equal(decimal.NewFromInt(440)) {
		t.Errorf("total: got %s, want 440", order.TotalAmount)
	}
}

func TestTokenSequence_SameDay(t *testing.T) {
	store := storage.NewMemory()
	now := time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)
	svc := service.NewOrderServiceWithClock(store, fixedClock(now))

	for i := 1; i <= 4; i++ {
		order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		want := fmt.Sprintf("HCN-%03d", i)
		if order.Token != want {
			t.Errorf("token %d: got %s, want %s", i, order.Token, want)
		}
	}
}

func TestTokenSequence_ResetsOnNewDay(t *testing.T) {
	store := storage.NewMemory()
	now := time.Date(2025, 3, 15, 23, 50, 0, 0, time.UTC)
	svc := service.NewOrderServiceWithClock(store, func() time.Time { return now })

	first, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Token != "HCN-001" {
		t.Fatalf("token: got %s, want HCN-001", first.Token)
	}

	// Cross local midnight.
	now = now.Add(20 * time.Minute)

	second, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.Token != "HCN-001" {
		t.Errorf("token after day boundary: got %s, want HCN-001", second.Token)
	}
}

func TestTokenSequence_PaddingIsMinimumWidth(t *testing.T) {
	store := storage.NewMemory()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	if err := storage.WriteJSON(store, storage.KeyTokenCounter, 999); err != nil {
		t.Fatalf("seed counter: %v", err)
	}
	if err := storage.WriteJSON(store, storage.KeyTokenDate, now.Format(service.TokenDateLayout)); err != nil {
		t.Fatalf("seed date: %v", err)
	}
	svc := service.NewOrderServiceWithClock(store, fixedClock(now))

	order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.Token != "HCN-1000" {
		t.Errorf("token: got %s, want HCN-1000", order.Token)
	}
}

func TestUpdateStatus_FullLifecycle(t *testing.T) {
	store := storage.NewMemory()
	svc := service.NewOrderService(store)

	order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(2)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, status := range []string{
		enum.OrderStatusAccepted,
		enum.OrderStatusPreparing,
		enum.OrderStatusReady,
		enum.OrderStatusCompleted,
	} {
		if err := svc.UpdateStatus(order.ID, status); err != nil {
			t.Fatalf("update to %s: %v", status, err)
		}
		got, ok, err := svc.Get(order.ID)
		if err != nil || !ok {
			t.Fatalf("get after %s: ok=%v err=%v", status, ok, err)
		}
		if got.Status != status {
			t.Errorf("status: got %s, want %s", got.Status, status)
		}
	}

	stats := service.NewStatsService(store)
	snap, err := stats.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.ActiveOrders != 0 {
		t.Errorf("active orders after completion: got %d, want 0", snap.ActiveOrders)
	}
}

func TestUpdateStatus_UnknownIDIsNoOp(t *testing.T) {
	store := storage.NewMemory()
	svc := service.NewOrderService(store)

	if _, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.UpdateStatus("nope", enum.OrderStatusCancelled); err != nil {
		t.Fatalf("update unknown id: %v", err)
	}
	orders, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 || orders[0].Status != enum.OrderStatusPending {
		t.Errorf("unexpected mutation: %+v", orders)
	}
}

func TestUpdateWaitTime_Floor(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())
	order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		minutes int
		want    int
	}{
		{25, 25},
		{5, 5},
		{4, 5},
		{0, 5},
		{-10, 5},
	}
	for _, tc := range cases {
		if err := svc.UpdateWaitTime(order.ID, tc.minutes); err != nil {
			t.Fatalf("update wait time %d: %v", tc.minutes, err)
		}
		got, _, err := svc.Get(order.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.EstimatedTime != tc.want {
			t.Errorf("wait time for %d: got %d, want %d", tc.minutes, got.EstimatedTime, tc.want)
		}
	}
}

func TestOrderImmutability(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())
	order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(2)}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.UpdateStatus(order.ID, enum.OrderStatusPreparing); err != nil {
		t.Fatalf("update status: %v", err)
	}
	if err := svc.UpdateWaitTime(order.ID, 45); err != nil {
		t.Fatalf("update wait time: %v", err)
	}
	if err := svc.UpdateStatus(order.ID, enum.OrderStatusReady); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, ok, err := svc.Get(order.ID)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.ID != order.ID || got.Token != order.Token {
		t.Errorf("identity changed: got %s/%s, want %s/%s", got.ID, got.Token, order.ID, order.Token)
	}
	if !got.TotalAmount.Equal(order.TotalAmount) {
		t.Errorf("total changed: got %s, want %s", got.TotalAmount, order.TotalAmount)
	}
	if len(got.Items) != len(order.Items) || got.Items[0].Quantity != order.Items[0].Quantity {
		t.Errorf("items changed: got %+v, want %+v", got.Items, order.Items)
	}
}

func TestGet_AbsentOrder(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())
	_, ok, err := svc.Get("missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing order")
	}
}

func TestList_InsertionOrder(t *testing.T) {
	svc := service.NewOrderService(storage.NewMemory())
	var ids []string
	for i := 0; i < 3; i++ {
		order, err := svc.Create(service.CreateOrderRequest{Items: []model.CartItem{noodlesLine(1)}})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, order.ID)
	}
	orders, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("len: got %d, want 3", len(orders))
	}
	for i, o := range orders {
		if o.ID != ids[i] {
			t.Errorf("order %d out of insertion order", i)
		}
	}
}
