// Package model defines the domain records persisted by the key-value
// store. JSON field names are the durable storage contract, so demo data
// written by earlier builds keeps loading.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. Orders snapshot the name and price at
// order time, so later menu edits never rewrite history.
type MenuItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	PriceFull   decimal.Decimal  `json:"priceFull"`
	PriceHalf   *decimal.Decimal `json:"priceHalf,omitempty"`
	IsVeg       bool             `json:"isVeg"`
	Image       string           `json:"image"`
}

// Table is static reference data; orders reference it but never mutate it.
type Table struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	QRCode string `json:"qrCode"`
}

// CartItem is one order line: a menu item reference with the name, variant
// and unit price denormalized at the time it was added.
type CartItem struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Variant    string          `json:"variant"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// CustomerDetails is the contact block captured with an order.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Order is a placed order. ID, token, items and total amount are fixed at
// creation; only status and estimated wait time change afterwards.
type Order struct {
	ID            string          `json:"id"`
	Token         string          `json:"token"`
	TableID       string          `json:"tableId"`
	Customer      CustomerDetails `json:"customerDetails"`
	Items         []CartItem      `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
	EstimatedTime int             `json:"estimatedTime"` // minutes
	ChefNote      string          `json:"chefNote,omitempty"`
}

// Expense is an admin-recorded cost. Created and deleted, never edited.
type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// Stats is the derived financial read model. It carries no lifecycle of
// its own and is recomputed from orders and expenses on every request.
type Stats struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TodayRevenue  decimal.Decimal `json:"todayRevenue"`
	MonthRevenue  decimal.Decimal `json:"monthRevenue"`
	TotalOrders   int             `json:"totalOrders"`
	ActiveOrders  int             `json:"activeOrders"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	TodayExpenses decimal.Decimal `json:"todayExpenses"`
	MonthExpenses decimal.Decimal `json:"monthExpenses"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	TodayProfit   decimal.Decimal `json:"todayProfit"`
	MonthProfit   decimal.Decimal `json:"monthProfit"`
}
