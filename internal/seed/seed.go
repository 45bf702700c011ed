// Package seed holds the demo catalog and first-run initialization.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/service"
	"github.com/krafty-kitchen/api/internal/storage"
)

const tableCount = 10

// Menu returns the demo menu catalog.
func Menu() []model.MenuItem {
	half := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return []model.MenuItem{
		{ID: "1", Name: "Manchow Soup", Category: "Soups", Description: "Spicy brown soup with fried noodles", PriceFull: decimal.NewFromInt(180), PriceHalf: half(100), IsVeg: true, Image: "https://picsum.photos/200/200?random=1"},
		{ID: "2", Name: "Hakka Noodles", Category: "Noodles", Description: "Classic stir-fried noodles with veggies", PriceFull: decimal.NewFromInt(220), PriceHalf: half(120), IsVeg: true, Image: "https://picsum.photos/200/200?random=2"},
		{ID: "3", Name: "Schezwan Fried Rice", Category: "Rice", Description: "Spicy rice tossed in schezwan sauce", PriceFull: decimal.NewFromInt(240), PriceHalf: half(130), IsVeg: false, Image: "https://picsum.photos/200/200?random=3"},
		{ID: "4", Name: "Chilli Chicken", Category: "Starters", Description: "Diced chicken in spicy soy sauce", PriceFull: decimal.NewFromInt(300), PriceHalf: half(180), IsVeg: false, Image: "https://picsum.photos/200/200?random=4"},
		{ID: "5", Name: "Spring Rolls", Category: "Starters", Description: "Crispy rolls with veggie filling", PriceFull: decimal.NewFromInt(180), IsVeg: true, Image: "https://picsum.photos/200/200?random=5"},
	}
}

// Tables returns the demo table catalog with their QR order URLs.
func Tables() []model.Table {
	tables := make([]model.Table, tableCount)
	for i := range tables {
		n := i + 1
		tables[i] = model.Table{
			ID:     fmt.Sprintf("table-%d", n),
			Number: n,
			QRCode: fmt.Sprintf("https://kraftykitchen.app/order/%d", n),
		}
	}
	return tables
}

// EnsureDefaults initializes any absent storage keys so a fresh store
// starts with the demo catalog and an empty order book. Existing values
// are left alone.
func EnsureDefaults(store storage.Store, now time.Time) error {
	defaults := []struct {
		key   string
		value any
	}{
		{storage.KeyMenu, Menu()},
		{storage.KeyTables, Tables()},
		{storage.KeyOrders, []model.Order{}},
		{storage.KeyExpenses, []model.Expense{}},
		{storage.KeyTokenCounter, 0},
		{storage.KeyTokenDate, now.Format(service.TokenDateLayout)},
	}
	for _, d := range defaults {
		ok, err := storage.Has(store, d.key)
		if err != nil {
			return fmt.Errorf("check %s: %w", d.key, err)
		}
		if ok {
			continue
		}
		if err := storage.WriteJSON(store, d.key, d.value); err != nil {
			return fmt.Errorf("seed %s: %w", d.key, err)
		}
	}
	return nil
}

// Reset overwrites every key with its default, wiping orders and
// expenses along with the catalogs.
func Reset(store storage.Store, now time.Time) error {
	if err := storage.WriteJSON(store, storage.KeyMenu, Menu()); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	if err := storage.WriteJSON(store, storage.KeyTables, Tables()); err != nil {
		return fmt.Errorf("seed tables: %w", err)
	}
	if err := storage.WriteJSON(store, storage.KeyOrders, []model.Order{}); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := storage.WriteJSON(store, storage.KeyExpenses, []model.Expense{}); err != nil {
		return fmt.Errorf("seed expenses: %w", err)
	}
	if err := storage.WriteJSON(store, storage.KeyTokenCounter, 0); err != nil {
		return fmt.Errorf("seed token counter: %w", err)
	}
	if err := storage.WriteJSON(store, storage.KeyTokenDate, now.Format(service.TokenDateLayout)); err != nil {
		return fmt.Errorf("seed token date: %w", err)
	}
	return nil
}
