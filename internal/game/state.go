// Package game provides the session state, the tick phases and the main game loop.
package game

// Phase is the part of a tick currently running. Phases run strictly in
// order, and only the visibility phase writes to the tile grid.
type Phase int

const (
	// PhaseSetup covers dungeon generation, before the first tick.
	PhaseSetup Phase = iota
	// PhaseInput applies the player's command.
	PhaseInput
	// PhaseVisibility recomputes dirty viewsheds and the fog of war.
	PhaseVisibility
	// PhaseRender draws the frame; the grid is read-only.
	PhaseRender
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInput:
		return "input"
	case PhaseVisibility:
		return "visibility"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}
