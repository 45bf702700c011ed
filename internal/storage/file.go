package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File persists all keys in a single JSON document on disk. Every Get
// re-reads the file and every Set rewrites it through an atomic rename,
// so each read sees the latest persisted state and a crash never leaves a
// half-written document behind.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile creates a file-backed store at path. The file is created on the
// first write.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(key string) ([]byte, bool, error) {
	doc, err := f.load()
	if err != nil {
		return nil, false, err
	}
	raw, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return raw, true, nil
}

func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}

// load reads the backing file. A missing or corrupt file decodes as an
// empty document rather than an error.
func (f *File) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if json.Unmarshal(data, &doc) != nil {
		return map[string]json.RawMessage{}, nil
	}
	return doc, nil
}
