package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/storage"
)

// MenuService manages the menu catalog. There is no update operation;
// items are deleted and re-added instead of edited, so orders that
// snapshotted an item stay untouched.
type MenuService struct {
	store storage.Store
}

// NewMenuService creates a MenuService over the given store.
func NewMenuService(store storage.Store) *MenuService {
	return &MenuService{store: store}
}

// List returns the full menu in insertion order.
func (s *MenuService) List() ([]model.MenuItem, error) {
	var menu []model.MenuItem
	if err := storage.ReadJSON(s.store, storage.KeyMenu, &menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// Add appends item to the menu, assigning an id when none is set.
func (s *MenuService) Add(item model.MenuItem) (model.MenuItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	menu, err := s.List()
	if err != nil {
		return model.MenuItem{}, err
	}
	menu = append(menu, item)
	if err := storage.WriteJSON(s.store, storage.KeyMenu, menu); err != nil {
		return model.MenuItem{}, fmt.Errorf("persist menu: %w", err)
	}
	return item, nil
}

// Delete removes the item with the given id. Deleting an unknown id is a
// no-op.
func (s *MenuService) Delete(id string) error {
	menu, err := s.List()
	if err != nil {
		return err
	}
	kept := menu[:0]
	for _, item := range menu {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return storage.WriteJSON(s.store, storage.KeyMenu, kept)
}
