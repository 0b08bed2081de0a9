package persistence

import "sync"

// memoryStore is an insertion-ordered record collection guarded by a RWMutex.
// Records go in and come out as copies, so callers never alias store memory.
type memoryStore[T any] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(*T) string
	clone   func(*T) T
}

func newMemoryStore[T any](idOf func(*T) string, clone func(*T) T) *memoryStore[T] {
	return &memoryStore[T]{
		records: make([]T, 0),
		idOf:    idOf,
		clone:   clone,
	}
}

func (s *memoryStore[T]) list(keep func(*T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for i := range s.records {
		if keep == nil || keep(&s.records[i]) {
			out = append(out, s.clone(&s.records[i]))
		}
	}
	return out
}

func (s *memoryStore[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.idOf(&s.records[i]) == id {
			return s.clone(&s.records[i]), true
		}
	}
	var zero T
	return zero, false
}

func (s *memoryStore[T]) add(record *T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, s.clone(record))
}

// replace swaps in the record with the same id; a miss changes nothing
func (s *memoryStore[T]) replace(record *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.idOf(record)
	for i := range s.records {
		if s.idOf(&s.records[i]) == id {
			s.records[i] = s.clone(record)
			return true
		}
	}
	return false
}

// remove filters out every record with the id
func (s *memoryStore[T]) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	removed := false
	for i := range s.records {
		if s.idOf(&s.records[i]) == id {
			removed = true
			continue
		}
		kept = append(kept, s.records[i])
	}
	var zero T
	for i := len(kept); i < len(s.records); i++ {
		s.records[i] = zero
	}
	s.records = kept
	return removed
}

func (s *memoryStore[T]) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
