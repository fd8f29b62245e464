package history

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*Record),
		order:   make([]string, 0),
	}
}

// Save implements Store
func (m *MemoryStore) Save(ctx context.Context, r *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[r.ID]
	if !ok {
		m.order = append(m.order, r.ID)
	}

	saved := *r
	if ok {
		saved.CreatedAt = existing.CreatedAt
	}

	m.records[r.ID] = &saved
	return nil
}

// Get implements Store
func (m *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	record := *r
	return &record, nil
}

// ListAll implements Store
func (m *MemoryStore) ListAll(ctx context.Context) ([]*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, len(m.order))
	for i, id := range m.order {
		record := *m.records[id]
		records[i] = &record
	}

	return records, nil
}

// Clear implements Store
func (m *MemoryStore) Clear(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.order))
	m.records = make(map[string]*Record)
	m.order = make([]string, 0)

	return n, nil
}
