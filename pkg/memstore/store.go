package memstore

import (
	"sync"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque record identifier.
func NewID() string {
	return uuid.NewString()
}

// Store is a process-local table of records keyed by generated ids. It is
// reinitialized empty on process start and holds nothing across restarts.
// All access goes through the mutex, and Mutate runs its callback under the
// write lock so read-modify-write sequences on one record cannot interleave.
type Store[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

func New[T any]() *Store[T] {
	return &Store[T]{records: make(map[string]T)}
}

// Put inserts or overwrites the record under the given id.
func (s *Store[T]) Put(id string, record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[id]; !exists {
		s.order = append(s.order, id)
	}
	s.records[id] = record
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

// List returns all records in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Replace overwrites an existing record, reporting false when the id is absent.
func (s *Store[T]) Replace(id string, record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	s.records[id] = record
	return true
}

// Mutate applies fn to the stored record atomically. fn must return the new
// record value; it must not retain references shared with other readers.
func (s *Store[T]) Mutate(id string, fn func(T) T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := fn(record)
	s.records[id] = updated
	return updated, true
}

func (s *Store[T]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
