package game

import (
	"github.com/samdwyer/deepfloor/internal/entity"
	"github.com/samdwyer/deepfloor/internal/world"
)

// Walkable reports whether an entity may stand on a cell.
type Walkable interface {
	IsPassable(c world.Coordinate) bool
}

// TryMove moves the entity by (dx, dy) on its floor. The move is allowed
// only onto an existing passable tile; targets outside the grid or on
// unallocated cells are rejected, never clamped. A successful move marks
// the entity's viewshed dirty. Returns true if the entity moved.
func TryMove(grid Walkable, reg *entity.Registry, id entity.ID, dx, dy int) bool {
	pos := reg.Positions.Get(id)
	if pos == nil {
		return false
	}

	target := pos.Add(dx, dy)
	if !grid.IsPassable(target) {
		return false
	}

	*pos = target
	if vs := reg.Viewsheds.Get(id); vs != nil {
		vs.Dirty = true
	}
	return true
}
