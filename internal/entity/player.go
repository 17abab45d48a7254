package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/deepfloor/internal/world"
)

// Default player settings
const (
	PlayerSymbol       = '@'
	DefaultVisionRange = 8
)

// NewPlayer creates the player entity at the given position.
// The player is displayed as a single bold '@'.
func NewPlayer(r *Registry, pos world.Coordinate, visionRange int) ID {
	id := r.Create()
	r.Positions.Add(id, pos)
	r.Viewsheds.Add(id, NewViewshed(visionRange))
	r.Players.Add(id, Player{})
	r.Renderables.Add(id, Renderable{
		Symbol:     PlayerSymbol,
		Foreground: tcell.ColorYellow,
		Background: tcell.ColorBlack,
		Bold:       true,
	})
	return id
}

// NewWatcher creates a non-player viewer, such as a monster, whose sight
// never touches the map's fog of war.
func NewWatcher(r *Registry, pos world.Coordinate, visionRange int, rend Renderable) ID {
	id := r.Create()
	r.Positions.Add(id, pos)
	r.Viewsheds.Add(id, NewViewshed(visionRange))
	r.Renderables.Add(id, rend)
	return id
}
