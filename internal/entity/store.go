package entity

import (
	"maps"
	"slices"
)

// Store holds one component type keyed by entity.
type Store[T any] struct {
	items map[ID]*T
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[ID]*T)}
}

// Add attaches a component to the entity, replacing any previous one.
func (s *Store[T]) Add(id ID, component T) {
	s.items[id] = &component
}

// Get returns the entity's component, or nil if it has none.
// The pointer stays valid until the component is replaced or removed.
func (s *Store[T]) Get(id ID) *T {
	return s.items[id]
}

// Has returns true if the entity has this component.
func (s *Store[T]) Has(id ID) bool {
	_, ok := s.items[id]
	return ok
}

// Remove detaches the component from the entity.
func (s *Store[T]) Remove(id ID) {
	delete(s.items, id)
}

// Len returns the number of entities holding the component.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// IDs returns the holders in ascending order.
func (s *Store[T]) IDs() []ID {
	return slices.Sorted(maps.Keys(s.items))
}
