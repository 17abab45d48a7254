// Package entity provides the entity registry and the components stored in it.
package entity

import "github.com/samdwyer/deepfloor/internal/world"

// ID identifies an entity. Zero is never issued.
type ID uint32

// Registry owns every component store and hands out entity IDs.
type Registry struct {
	next ID

	Positions   *Store[world.Coordinate]
	Viewsheds   *Store[Viewshed]
	Players     *Store[Player]
	Renderables *Store[Renderable]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		Positions:   NewStore[world.Coordinate](),
		Viewsheds:   NewStore[Viewshed](),
		Players:     NewStore[Player](),
		Renderables: NewStore[Renderable](),
	}
}

// Create issues a new entity ID with no components.
func (r *Registry) Create() ID {
	r.next++
	return r.next
}

// Destroy removes every component of the entity.
func (r *Registry) Destroy(id ID) {
	r.Positions.Remove(id)
	r.Viewsheds.Remove(id)
	r.Players.Remove(id)
	r.Renderables.Remove(id)
}

// IsPlayer returns true if the entity carries the Player marker.
func (r *Registry) IsPlayer(id ID) bool {
	return r.Players.Has(id)
}

// EachViewer calls fn for every entity holding both a position and a
// viewshed, in ascending ID order.
func (r *Registry) EachViewer(fn func(id ID, pos world.Coordinate, vs *Viewshed, isPlayer bool)) {
	for _, id := range r.Viewsheds.IDs() {
		pos := r.Positions.Get(id)
		if pos == nil {
			continue
		}
		fn(id, *pos, r.Viewsheds.Get(id), r.IsPlayer(id))
	}
}

// EachRenderable calls fn for every positioned, drawable entity in
// ascending ID order.
func (r *Registry) EachRenderable(fn func(id ID, pos world.Coordinate, rend Renderable)) {
	for _, id := range r.Renderables.IDs() {
		pos := r.Positions.Get(id)
		if pos == nil {
			continue
		}
		fn(id, *pos, *r.Renderables.Get(id))
	}
}

// FirstPlayer returns the lowest-numbered player entity.
func (r *Registry) FirstPlayer() (ID, bool) {
	ids := r.Players.IDs()
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
