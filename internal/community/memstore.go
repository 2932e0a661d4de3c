package community

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store implementation used for tests and
// for running without a remote backend.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int
	docs   map[string][]EventDocument // collection -> documents
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]EventDocument)}
}

func (m *MemoryStore) Query(_ context.Context, collection string, f Filter) ([]EventDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]EventDocument, 0)
	for _, doc := range m.docs[collection] {
		if f.Status != "" && doc.Status != f.Status {
			continue
		}
		if f.Category != "" && !strings.EqualFold(doc.Category, f.Category) {
			continue
		}
		out = append(out, doc)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (m *MemoryStore) Insert(_ context.Context, collection string, doc EventDocument) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if doc.ID == "" {
		m.nextID++
		doc.ID = fmt.Sprintf("doc-%04d", m.nextID)
	}
	m.docs[collection] = append(m.docs[collection], doc)
	return doc.ID, nil
}
