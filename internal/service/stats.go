package service

import (
	"time"

	"github.com/krafty-kitchen/api/internal/enum"
	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/storage"
)

// StatsService computes the derived financial read model. It keeps no
// state and caches nothing: every Snapshot rescans the order and expense
// collections.
type StatsService struct {
	store storage.Store
	now   func() time.Time
}

// NewStatsService creates a StatsService over the given store.
func NewStatsService(store storage.Store) *StatsService {
	return NewStatsServiceWithClock(store, time.Now)
}

// NewStatsServiceWithClock is NewStatsService with an injectable clock,
// used by tests to pin window boundaries.
func NewStatsServiceWithClock(store storage.Store, now func() time.Time) *StatsService {
	return &StatsService{store: store, now: now}
}

// Snapshot aggregates revenue, expenses and profit for today (since
// local midnight), this month (since the first of the month) and
// all-time. Revenue counts PAID orders only; unsettled cash contributes
// nothing. Profit is revenue minus expenses and may be negative. Empty
// collections yield all zeros.
func (s *StatsService) Snapshot() (model.Stats, error) {
	var orders []model.Order
	if err := storage.ReadJSON(s.store, storage.KeyOrders, &orders); err != nil {
		return model.Stats{}, err
	}
	var expenses []model.Expense
	if err := storage.ReadJSON(s.store, storage.KeyExpenses, &expenses); err != nil {
		return model.Stats{}, err
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats model.Stats
	for _, o := range orders {
		stats.TotalOrders++
		if !enum.IsTerminal(o.Status) {
			stats.ActiveOrders++
		}
		if o.PaymentStatus != enum.PaymentStatusPaid {
			continue
		}
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		if !o.CreatedAt.Before(monthStart) {
			stats.MonthRevenue = stats.MonthRevenue.Add(o.TotalAmount)
		}
		if !o.CreatedAt.Before(dayStart) {
			stats.TodayRevenue = stats.TodayRevenue.Add(o.TotalAmount)
		}
	}
	for _, e := range expenses {
		stats.TotalExpenses = stats.TotalExpenses.Add(e.Amount)
		if !e.Date.Before(monthStart) {
			stats.MonthExpenses = stats.MonthExpenses.Add(e.Amount)
		}
		if !e.Date.Before(dayStart) {
			stats.TodayExpenses = stats.TodayExpenses.Add(e.Amount)
		}
	}

	stats.TotalProfit = stats.TotalRevenue.Sub(stats.TotalExpenses)
	stats.MonthProfit = stats.MonthRevenue.Sub(stats.MonthExpenses)
	stats.TodayProfit = stats.TodayRevenue.Sub(stats.TodayExpenses)
	return stats, nil
}
