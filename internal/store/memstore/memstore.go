package memstore

import (
	"context"
	"sync"

	"hr-portal/internal/store"
)

// MemStore is a thread-safe in-memory store.Client. It backs unit tests and
// local development; every operation copies documents so callers can never
// alias internal state.
type MemStore struct {
	mu sync.RWMutex
	// Structure: [collection][id]document
	data map[string]map[string]map[string]any
}

func New() *MemStore {
	return &MemStore{
		data: make(map[string]map[string]map[string]any),
	}
}

func (m *MemStore) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	col, ok := m.data[collection]
	if !ok {
		return nil, store.ErrNotFound
	}
	doc, ok := col[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return copyDoc(doc), nil
}

func (m *MemStore) List(ctx context.Context, collection string, filter store.Filter) ([]map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]map[string]any, 0)
	for _, doc := range m.data[collection] {
		if store.Matches(doc, filter) {
			out = append(out, copyDoc(doc))
		}
	}
	return out, nil
}

func (m *MemStore) Create(ctx context.Context, collection, id string, doc map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[collection] == nil {
		m.data[collection] = make(map[string]map[string]any)
	}
	if _, exists := m.data[collection][id]; exists {
		return store.ErrConflict
	}
	m.data[collection][id] = copyDoc(doc)
	return nil
}

func (m *MemStore) Patch(ctx context.Context, collection, id string, partial map[string]any) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.data[collection]
	if !ok {
		return nil, store.ErrNotFound
	}
	doc, ok := col[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	merged := store.Merge(doc, partial)
	col[id] = merged
	return copyDoc(merged), nil
}

func (m *MemStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.data[collection]
	if !ok {
		return store.ErrNotFound
	}
	if _, ok := col[id]; !ok {
		return store.ErrNotFound
	}
	delete(col, id)
	return nil
}

func copyDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
