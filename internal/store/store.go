package store

import (
	"sync"

	"reqadmin/internal/domain"
)

// RequestStore provides access to the currently listed requests
type RequestStore interface {
	Replace(requests []domain.Request)
	All() []domain.Request
	IDs() []string
	Get(id string) (domain.Request, bool)
	Len() int
}

// MemoryRequestStore is an in-memory implementation of RequestStore.
// It keeps requests in the order the server returned them.
type MemoryRequestStore struct {
	mu    sync.RWMutex
	order []domain.Request
	byID  map[string]int
}

// NewMemoryRequestStore creates an empty store
func NewMemoryRequestStore() *MemoryRequestStore {
	return &MemoryRequestStore{
		byID: make(map[string]int),
	}
}

// Replace swaps the whole listing. Later duplicates of an id are dropped.
func (s *MemoryRequestStore) Replace(requests []domain.Request) {
	order := make([]domain.Request, 0, len(requests))
	byID := make(map[string]int, len(requests))
	for _, r := range requests {
		if _, dup := byID[r.ID]; dup {
			continue
		}
		byID[r.ID] = len(order)
		order = append(order, r)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = order
	s.byID = byID
}

func (s *MemoryRequestStore) All() []domain.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]domain.Request, len(s.order))
	copy(result, s.order)
	return result
}

func (s *MemoryRequestStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.order))
	for i, r := range s.order {
		ids[i] = r.ID
	}
	return ids
}

func (s *MemoryRequestStore) Get(id string) (domain.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Request{}, false
	}
	return s.order[i], true
}

func (s *MemoryRequestStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
