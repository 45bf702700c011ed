// Package storage provides the scalar key-value store that backs every
// collection. Each value is an independent JSON document; services read a
// whole collection, mutate it in memory, and write the whole collection
// back. Two near-simultaneous writers race last-writer-wins on the whole
// value, which is the accepted single-writer model.
package storage

import "encoding/json"

// Persisted keys. The layout is the durable contract: collections are
// JSON arrays, token scalars are a JSON number and string.
const (
	KeyOrders       = "orders"
	KeyMenu         = "menu"
	KeyTables       = "tables"
	KeyExpenses     = "expenses"
	KeyTokenCounter = "tokenCounter"
	KeyTokenDate    = "tokenDate"
)

// Store is a scalar key-value store holding raw JSON values.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set overwrites the value for key.
	Set(key string, value []byte) error
}

// ReadJSON decodes the value at key into v. Absent or malformed values
// leave v at its zero value: a first read or a corrupt entry degrades to
// an empty collection instead of failing.
func ReadJSON(s Store, key string, v any) error {
	raw, ok, err := s.Get(key)
	if err != nil {
		return err
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	// Corrupt value: treated as absent.
	_ = json.Unmarshal(raw, v)
	return nil
}

// WriteJSON encodes v and stores it at key.
func WriteJSON(s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}

// Has reports whether key holds a value.
func Has(s Store, key string) (bool, error) {
	_, ok, err := s.Get(key)
	return ok, err
}
