package ui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/deepfloor/internal/entity"
	"github.com/samdwyer/deepfloor/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// View is everything one frame needs. The renderer only reads it.
type View struct {
	Grid     *world.TileGrid
	Registry *entity.Registry
	Focus    world.Coordinate // Camera target; Focus.Z selects the floor drawn
	Status   string           // Footer line
}

// Cell is how a single tile appears on screen.
type Cell struct {
	Glyph      rune
	Foreground tcell.Color
	Background tcell.Color
	Dimmed     bool
}

// Style returns the tcell style for the cell.
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Foreground).Background(c.Background)
}

// TileCell applies the fog-of-war policy: tiles never revealed are not
// drawn, revealed tiles out of sight are drawn desaturated, and visible
// tiles are drawn in full color.
func TileCell(t world.Tile) (Cell, bool) {
	if !t.Allocated() || !t.Revealed {
		return Cell{}, false
	}
	if t.Visible {
		return Cell{Glyph: t.Glyph, Foreground: t.Foreground, Background: t.Background}, true
	}
	return Cell{
		Glyph:      t.Glyph,
		Foreground: Desaturate(t.Foreground),
		Background: Desaturate(t.Background),
		Dimmed:     true,
	}, true
}

// Desaturate returns the gray with the same perceived lightness as c.
func Desaturate(c tcell.Color) tcell.Color {
	if !c.Valid() {
		return c
	}
	r, g, b := c.RGB()
	if r < 0 {
		return c
	}

	l, _, _ := colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Lab()
	gr, gg, gb := colorful.Lab(l, 0, 0).Clamped().RGB255()
	return tcell.NewRGBColor(int32(gr), int32(gg), int32(gb))
}

// Viewport returns the map offset that centers focus in a screen of the
// given size without scrolling past the map edges.
func Viewport(screenW, screenH, mapW, mapH int, focus world.Coordinate) (offX, offY int) {
	offX = clamp(focus.X-screenW/2, 0, max(mapW-screenW, 0))
	offY = clamp(focus.Y-screenH/2, 0, max(mapH-screenH, 0))
	return offX, offY
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Render draws the focused floor, the entities standing on visible tiles
// and the status footer.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := max(height-1, 0) // Last row is the footer
	offX, offY := Viewport(width, mapHeight, v.Grid.Size.X, v.Grid.Size.Y, v.Focus)

	// Draw dungeon tiles
	for sy := 0; sy < mapHeight; sy++ {
		for sx := 0; sx < width; sx++ {
			tile, ok := v.Grid.Get(world.At(sx+offX, sy+offY, v.Focus.Z))
			if !ok {
				continue
			}
			if cell, ok := TileCell(tile); ok {
				r.screen.SetContent(sx, sy, cell.Glyph, cell.Style())
			}
		}
	}

	// Draw entities on top
	v.Registry.EachRenderable(func(id entity.ID, pos world.Coordinate, rend entity.Renderable) {
		if pos.Z != v.Focus.Z {
			return
		}
		if !v.Registry.IsPlayer(id) {
			if tile, ok := v.Grid.Get(pos); !ok || !tile.Visible {
				return
			}
		}
		sx, sy := pos.X-offX, pos.Y-offY
		if sx < 0 || sx >= width || sy < 0 || sy >= mapHeight {
			return
		}
		style := tcell.StyleDefault.Foreground(rend.Foreground).Background(rend.Background).Bold(rend.Bold)
		r.screen.SetContent(sx, sy, rend.Symbol, style)
	})

	r.RenderMessage(v.Status, height-1)
	r.screen.Show()
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
