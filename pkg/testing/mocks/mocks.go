package mocks

import (
	"context"
	"sync"

	"fitcatalog/pkg/cache"
	"fitcatalog/pkg/catalog"
)

// --- Mock Remote Source ---
type MockRemoteSource struct {
	NameVal            string
	FetchExercisesFunc func(ctx context.Context) ([]catalog.RawRow, error)
}

func (m *MockRemoteSource) Name() string {
	if m.NameVal != "" {
		return m.NameVal
	}
	return "mock"
}

func (m *MockRemoteSource) FetchExercises(ctx context.Context) ([]catalog.RawRow, error) {
	if m.FetchExercisesFunc != nil {
		return m.FetchExercisesFunc(ctx)
	}
	return nil, nil
}

// --- Mock Snapshot Store ---
type MockSnapshotStore struct {
	LoadFunc func() (cache.Snapshot, bool)

	mu    sync.Mutex
	saved [][]catalog.RawRow
}

func (m *MockSnapshotStore) Load() (cache.Snapshot, bool) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return cache.Snapshot{}, false
}

func (m *MockSnapshotStore) Save(items []catalog.RawRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, items)
}

// Saved returns every item set passed to Save, in order.
func (m *MockSnapshotStore) Saved() [][]catalog.RawRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]catalog.RawRow, len(m.saved))
	copy(out, m.saved)
	return out
}

// --- Mock Connectivity ---
type MockConnectivity struct {
	mu       sync.Mutex
	online   bool
	EventsCh chan bool
}

func NewMockConnectivity(online bool) *MockConnectivity {
	return &MockConnectivity{online: online, EventsCh: make(chan bool, 8)}
}

func (m *MockConnectivity) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

func (m *MockConnectivity) Events() <-chan bool {
	return m.EventsCh
}

// SetOnline flips the state and emits the transition.
func (m *MockConnectivity) SetOnline(online bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	m.mu.Unlock()
	if changed {
		m.EventsCh <- online
	}
}
