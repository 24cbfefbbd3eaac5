package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"confetti-orders/models"
)

// FileStore keeps the whole order collection in a single pretty-printed
// JSON document, rewritten wholesale on every Put.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON document at path. The
// file is created on first Put; a missing file loads as an empty
// collection.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the full order collection.
func (s *FileStore) Load(ctx context.Context) (map[string]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Put upserts one order and rewrites the document.
func (s *FileStore) Put(ctx context.Context, order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return err
	}
	orders[order.ID] = order

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) load() (map[string]models.Order, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]models.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	orders := map[string]models.Order{}
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return orders, nil
}
