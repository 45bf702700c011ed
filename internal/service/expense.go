package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/storage"
)

// ExpenseService manages admin-recorded expenses. Expenses are created
// and deleted, never edited.
type ExpenseService struct {
	store storage.Store
	now   func() time.Time
}

// NewExpenseService creates an ExpenseService over the given store.
func NewExpenseService(store storage.Store) *ExpenseService {
	return NewExpenseServiceWithClock(store, time.Now)
}

// NewExpenseServiceWithClock is NewExpenseService with an injectable
// clock.
func NewExpenseServiceWithClock(store storage.Store, now func() time.Time) *ExpenseService {
	return &ExpenseService{store: store, now: now}
}

// List returns all expenses in insertion order.
func (s *ExpenseService) List() ([]model.Expense, error) {
	var expenses []model.Expense
	if err := storage.ReadJSON(s.store, storage.KeyExpenses, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Add appends an expense, assigning an id and timestamp when unset.
func (s *ExpenseService) Add(expense model.Expense) (model.Expense, error) {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	if expense.Date.IsZero() {
		expense.Date = s.now()
	}
	expenses, err := s.List()
	if err != nil {
		return model.Expense{}, err
	}
	expenses = append(expenses, expense)
	if err := storage.WriteJSON(s.store, storage.KeyExpenses, expenses); err != nil {
		return model.Expense{}, fmt.Errorf("persist expenses: %w", err)
	}
	return expense, nil
}

// Delete removes the expense with the given id. Deleting an unknown id
// is a no-op.
func (s *ExpenseService) Delete(id string) error {
	expenses, err := s.List()
	if err != nil {
		return err
	}
	kept := expenses[:0]
	for _, e := range expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return storage.WriteJSON(s.store, storage.KeyExpenses, kept)
}
