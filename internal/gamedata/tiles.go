package gamedata

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/deepfloor/internal/world"
)

// TileDef defines how a tile kind looks, loaded from JSON.
type TileDef struct {
	Kind       string `json:"kind"`       // "floor" or "wall"
	Glyph      string `json:"glyph"`      // Single character for rendering (e.g., "#")
	Foreground string `json:"foreground"` // Hex color code (e.g., "#8080CC")
	Background string `json:"background"` // Hex color code
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadPalette builds the tile palette from the embedded tiles.json.
func LoadPalette() (world.Palette, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return world.Palette{}, err
	}
	return file.Palette()
}

// LoadPaletteFile builds the tile palette from a tiles.json on disk.
func LoadPaletteFile(path string) (world.Palette, error) {
	file, err := LoadFile[TilesFile](path)
	if err != nil {
		return world.Palette{}, err
	}
	return file.Palette()
}

// Palette converts the definitions to tile templates. Both a floor and a
// wall definition are required.
func (f TilesFile) Palette() (world.Palette, error) {
	var p world.Palette
	var haveFloor, haveWall bool

	for _, def := range f.Tiles {
		glyph, fg, bg, err := def.parse()
		if err != nil {
			return world.Palette{}, err
		}
		switch def.Kind {
		case "floor":
			p.Floor = world.FloorTile(glyph, fg, bg)
			haveFloor = true
		case "wall":
			p.Wall = world.WallTile(glyph, fg, bg)
			haveWall = true
		default:
			return world.Palette{}, fmt.Errorf("unknown tile kind %q", def.Kind)
		}
	}

	if !haveFloor || !haveWall {
		return world.Palette{}, fmt.Errorf("tiles must define both floor and wall")
	}
	return p, nil
}

func (d TileDef) parse() (glyph rune, fg, bg tcell.Color, err error) {
	if utf8.RuneCountInString(d.Glyph) != 1 {
		return 0, fg, bg, fmt.Errorf("%s glyph %q must be a single character", d.Kind, d.Glyph)
	}
	glyph, _ = utf8.DecodeRuneInString(d.Glyph)

	if fg, err = ParseHexColor(d.Foreground); err != nil {
		return 0, fg, bg, fmt.Errorf("%s foreground: %w", d.Kind, err)
	}
	if bg, err = ParseHexColor(d.Background); err != nil {
		return 0, fg, bg, fmt.Errorf("%s background: %w", d.Kind, err)
	}
	return glyph, fg, bg, nil
}
