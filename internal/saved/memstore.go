package saved

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store implementation for tests and for
// running without a remote backend.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	recs   map[string][]Record // couple id -> records
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[string][]Record)}
}

func (m *MemoryStore) List(_ context.Context, coupleID string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, len(m.recs[coupleID]))
	copy(out, m.recs[coupleID])
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, coupleID string, rec Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	rec.ID = fmt.Sprintf("saved-%04d", m.nextID)
	m.recs[coupleID] = append(m.recs[coupleID], rec)
	return rec.ID, nil
}

func (m *MemoryStore) Delete(_ context.Context, coupleID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.recs[coupleID][:0]
	for _, r := range m.recs[coupleID] {
		if r.EventID != eventID {
			kept = append(kept, r)
		}
	}
	m.recs[coupleID] = kept
	return nil
}
