package ecs

// Queryable is the type-erased view of a store used by World.Query
type Queryable interface {
	Has(id EntityID) bool
	Len() int
	Entities() []EntityID
}

// Store is a sparse set holding one attribute kind.
// Values live in a dense slice so iteration is ordered by insertion.
type Store[T any] struct {
	index  map[EntityID]int
	ids    []EntityID
	values []T
}

// NewStore creates an empty store
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:  make(map[EntityID]int),
		ids:    make([]EntityID, 0, 16),
		values: make([]T, 0, 16),
	}
}

// Set inserts or replaces the attribute for an entity
func (s *Store[T]) Set(id EntityID, val T) {
	if i, ok := s.index[id]; ok {
		s.values[i] = val
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, val)
}

// Get returns a pointer for in-place mutation.
// The pointer is invalidated by the next Set of a new entity or Remove.
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return &s.values[i], true
}

// Value returns a copy of the attribute (read-only access)
func (s *Store[T]) Value(id EntityID) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// Has reports whether the entity carries this attribute
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

// Remove detaches the attribute, swapping the last element into the hole
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	if i != last {
		s.ids[i] = s.ids[last]
		s.values[i] = s.values[last]
		s.index[s.ids[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	delete(s.index, id)
}

// Len returns the number of entities holding this attribute
func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Entities returns a copy of the ids in dense order
func (s *Store[T]) Entities() []EntityID {
	out := make([]EntityID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Each calls fn with write access to every value in dense order.
// fn must not add or remove entities from this store.
func (s *Store[T]) Each(fn func(id EntityID, val *T)) {
	for i := range s.ids {
		fn(s.ids[i], &s.values[i])
	}
}
