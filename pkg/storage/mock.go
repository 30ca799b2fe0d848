package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/blackoutbot/blackout/pkg/state"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	players   map[string]*state.PlayerState
	scores    []state.Score
	pingError error
	saveError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		players: make(map[string]*state.PlayerState),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// Ping mocks storage ping
func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

// Close mocks storage close
func (m *MockStorage) Close() error {
	return nil
}

// SavePlayerState mocks saving a player state
func (m *MockStorage) SavePlayerState(ctx context.Context, playerID string, ps *state.PlayerState) error {
	if ps == nil {
		return errors.New("player state cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	m.players[playerID] = ps
	return nil
}

// LoadPlayerState mocks loading a player state
func (m *MockStorage) LoadPlayerState(ctx context.Context, playerID string) (*state.PlayerState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ps, ok := m.players[playerID]
	if !ok {
		return nil, nil
	}
	return ps, nil
}

// DeletePlayerState mocks deleting a player state
func (m *MockStorage) DeletePlayerState(ctx context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, playerID)
	return nil
}

// AppendScore mocks recording a finished game
func (m *MockStorage) AppendScore(ctx context.Context, s *state.Score) error {
	if s == nil {
		return errors.New("score cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, *s)
	return nil
}

// TopScores mocks the leaderboard query
func (m *MockStorage) TopScores(ctx context.Context, n int) ([]state.Score, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sorted := make([]state.Score, len(m.scores))
	copy(sorted, m.scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}
