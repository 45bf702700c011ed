package service

import (
	"github.com/krafty-kitchen/api/internal/model"
	"github.com/krafty-kitchen/api/internal/storage"
)

// TableService reads the table catalog. Tables are static reference data
// seeded once; nothing mutates them at runtime.
type TableService struct {
	store storage.Store
}

// NewTableService creates a TableService over the given store.
func NewTableService(store storage.Store) *TableService {
	return &TableService{store: store}
}

// List returns all tables in insertion order.
func (s *TableService) List() ([]model.Table, error) {
	var tables []model.Table
	if err := storage.ReadJSON(s.store, storage.KeyTables, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}
