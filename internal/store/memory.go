package store

import (
	"context"
	"sync/atomic"

	"graphql-bff-api/internal/models"
)

// Memory serves the fixture dataset from a slice. The linear scan is fine at
// this size; a real deployment swaps in the SQLite store or a remote call.
type Memory struct {
	users   []models.User
	lookups atomic.Int64
}

// NewMemory builds the in-process store over the fixture dataset.
func NewMemory() *Memory {
	return &Memory{users: Fixtures()}
}

// GetUser implements UserStore.
func (s *Memory) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.lookups.Add(1)
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// Lookups reports how many dataset scans have run. Tests use it to verify
// that cache hits bypass the store.
func (s *Memory) Lookups() int64 {
	return s.lookups.Load()
}

var _ UserStore = (*Memory)(nil)
