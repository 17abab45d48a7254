package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/deepfloor/internal/world"
)

// Viewshed is an entity's vision state.
type Viewshed struct {
	VisibleTiles map[world.Coordinate]struct{} // Cells seen in the current frame
	Range        int                            // Vision radius
	Dirty        bool                           // Recompute needed
}

// NewViewshed creates a viewshed that will be computed on the next pass.
func NewViewshed(visionRange int) Viewshed {
	return Viewshed{
		VisibleTiles: make(map[world.Coordinate]struct{}),
		Range:        visionRange,
		Dirty:        true,
	}
}

// CanSee returns true if c was visible at the last recompute.
func (v *Viewshed) CanSee(c world.Coordinate) bool {
	_, ok := v.VisibleTiles[c]
	return ok
}

// Player marks the entity whose sight reveals the map.
type Player struct{}

// Renderable is how an entity is drawn.
type Renderable struct {
	Symbol     rune
	Foreground tcell.Color
	Background tcell.Color
	Bold       bool
}
