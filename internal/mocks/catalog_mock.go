package mocks

import (
	"context"
	"sync"

	"github.com/homegrocer/dashboard-cards/internal/domain"
)

// MockCatalog is an in-memory Catalog for tests, recording every lookup
// batch it receives.
type MockCatalog struct {
	mu      sync.Mutex
	lookups [][]string

	Metas     map[string]domain.ImageMeta
	LookupErr error
}

func NewMockCatalog() *MockCatalog {
	return &MockCatalog{
		Metas: make(map[string]domain.ImageMeta),
	}
}

func (m *MockCatalog) ImageLookup(ctx context.Context, ids []string) (map[string]domain.ImageMeta, error) {
	m.mu.Lock()
	m.lookups = append(m.lookups, append([]string(nil), ids...))
	m.mu.Unlock()

	if m.LookupErr != nil {
		return nil, m.LookupErr
	}

	out := make(map[string]domain.ImageMeta)
	for _, id := range ids {
		if meta, ok := m.Metas[id]; ok {
			out[id] = meta
		}
	}
	return out, nil
}

// Lookups returns every recorded lookup batch.
func (m *MockCatalog) Lookups() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.lookups...)
}
