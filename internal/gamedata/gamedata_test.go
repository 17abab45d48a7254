package gamedata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/deepfloor/internal/world"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	require.NoError(t, err)

	assert.Equal(t, world.TileFloor, p.Floor.Kind)
	assert.Equal(t, '.', p.Floor.Glyph)
	assert.True(t, p.Floor.Passable)
	assert.False(t, p.Floor.Opaque)

	assert.Equal(t, world.TileWall, p.Wall.Kind)
	assert.Equal(t, '#', p.Wall.Glyph)
	assert.False(t, p.Wall.Passable)
	assert.True(t, p.Wall.Opaque)

	assert.Equal(t, world.DefaultPalette(), p, "embedded tiles.json matches the built-in palette")
}

func TestLoadPaletteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.json")
	content := `{"tiles": [
		{"kind": "floor", "glyph": "·", "foreground": "#112233", "background": "#000000"},
		{"kind": "wall", "glyph": "▓", "foreground": "#FFFFFF", "background": "#101010"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadPaletteFile(path)
	require.NoError(t, err)

	assert.Equal(t, '·', p.Floor.Glyph)
	assert.Equal(t, tcell.NewRGBColor(0x11, 0x22, 0x33), p.Floor.Foreground)
	assert.Equal(t, '▓', p.Wall.Glyph)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x10, 0x10), p.Wall.Background)
}

func TestLoadPaletteFileMissing(t *testing.T) {
	_, err := LoadPaletteFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestTilesFilePaletteErrors(t *testing.T) {
	floor := TileDef{Kind: "floor", Glyph: ".", Foreground: "#FFFFFF", Background: "#000000"}
	wall := TileDef{Kind: "wall", Glyph: "#", Foreground: "#FFFFFF", Background: "#000000"}

	tests := []struct {
		name  string
		tiles []TileDef
	}{
		{"missing wall", []TileDef{floor}},
		{"missing floor", []TileDef{wall}},
		{"unknown kind", []TileDef{floor, wall, {Kind: "lava", Glyph: "~", Foreground: "#FF0000", Background: "#000000"}}},
		{"long glyph", []TileDef{floor, {Kind: "wall", Glyph: "##", Foreground: "#FFFFFF", Background: "#000000"}}},
		{"empty glyph", []TileDef{floor, {Kind: "wall", Foreground: "#FFFFFF", Background: "#000000"}}},
		{"bad color", []TileDef{floor, {Kind: "wall", Glyph: "#", Foreground: "#GG0000", Background: "#000000"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TilesFile{Tiles: tt.tiles}.Palette()
			assert.Error(t, err)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#12345G", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, err := ParseHexColor("#8080CC")
	require.NoError(t, err)
	r, g, b := c.RGB()
	assert.Equal(t, [3]int32{0x80, 0x80, 0xcc}, [3]int32{r, g, b})
}
