// Package world provides the layered tile grid, dungeon generation and wall derivation.
package world

import "github.com/gdamore/tcell/v2"

// TileKind tags what occupies a grid cell.
type TileKind uint8

const (
	// TileUnallocated marks a cell nothing was ever carved into.
	TileUnallocated TileKind = iota
	// TileWall is an impassable, opaque boundary tile.
	TileWall
	// TileFloor is a passable, transparent tile.
	TileFloor
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case TileUnallocated:
		return "unallocated"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}

// Tile is a single map cell. Glyph and colors are cosmetic; Passable and
// Opaque are fixed once generation finishes. Visible and Revealed are the
// runtime fog-of-war state.
type Tile struct {
	Kind       TileKind
	Glyph      rune
	Foreground tcell.Color
	Background tcell.Color

	Passable bool
	Opaque   bool
	Visible  bool
	Revealed bool
}

// Allocated returns true if the tile holds a wall or floor.
func (t Tile) Allocated() bool {
	return t.Kind != TileUnallocated
}

// Palette holds the templates used when carving floors and deriving walls.
type Palette struct {
	Floor Tile
	Wall  Tile
}

// DefaultPalette returns the built-in floor and wall templates.
func DefaultPalette() Palette {
	black := tcell.NewRGBColor(0, 0, 0)
	return Palette{
		Floor: FloorTile('.', tcell.NewRGBColor(0x4c, 0x4c, 0x4c), black),
		Wall:  WallTile('#', tcell.NewRGBColor(0x80, 0x80, 0xcc), black),
	}
}

// FloorTile builds a passable, transparent floor tile.
func FloorTile(glyph rune, fg, bg tcell.Color) Tile {
	return Tile{Kind: TileFloor, Glyph: glyph, Foreground: fg, Background: bg, Passable: true}
}

// WallTile builds an impassable, opaque wall tile.
func WallTile(glyph rune, fg, bg tcell.Color) Tile {
	return Tile{Kind: TileWall, Glyph: glyph, Foreground: fg, Background: bg, Opaque: true}
}
