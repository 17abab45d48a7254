package world

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floor() Tile {
	return DefaultPalette().Floor
}

func TestTileGridGetOutOfRange(t *testing.T) {
	g := NewTileGrid(At(150, 100, 2))
	g.SetTile(At(149, 99, 1), floor())

	tests := []struct {
		name string
		c    Coordinate
	}{
		{"x at extent", At(150, 0, 0)},
		{"y at extent", At(0, 100, 0)},
		{"z at extent", At(0, 0, 2)},
		{"negative x", At(-1, 0, 0)},
		{"negative y", At(0, -1, 0)},
		{"negative z", At(0, 0, -1)},
		{"in range but unallocated", At(10, 10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := g.Get(tt.c)
			assert.False(t, ok)
			assert.False(t, g.IsPassable(tt.c))
			assert.False(t, g.IsOpaque(tt.c))
		})
	}

	tile, ok := g.Get(At(149, 99, 1))
	require.True(t, ok)
	assert.Equal(t, TileFloor, tile.Kind)
}

func TestTileGridAddressesEveryCellIndependently(t *testing.T) {
	g := NewTileGrid(At(3, 4, 2))

	glyph := 'a'
	for z := 0; z < 2; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 3; x++ {
				g.SetTile(At(x, y, z), FloorTile(glyph, tcell.ColorWhite, tcell.ColorBlack))
				glyph++
			}
		}
	}

	glyph = 'a'
	for z := 0; z < 2; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 3; x++ {
				tile, ok := g.Get(At(x, y, z))
				require.True(t, ok)
				assert.Equal(t, glyph, tile.Glyph, "glyph at (%d,%d,%d)", x, y, z)
				glyph++
			}
		}
	}
}

func TestTileGridSetTileOutOfRangeIsNoop(t *testing.T) {
	g := NewTileGrid(At(4, 4, 1))

	assert.NotPanics(t, func() {
		g.SetTile(At(4, 0, 0), floor())
		g.SetTile(At(-1, 2, 0), floor())
		g.SetVisible(At(0, 9, 0), true)
		g.SetRevealed(At(0, 0, 5), true)
	})
}

func TestTileGridFlagsOnUnallocatedCellAreNoop(t *testing.T) {
	g := NewTileGrid(At(4, 4, 1))
	c := At(1, 1, 0)

	g.SetVisible(c, true)
	g.SetRevealed(c, true)

	_, ok := g.Get(c)
	assert.False(t, ok, "flagging an unallocated cell must not allocate it")
}

func TestTileGridFlags(t *testing.T) {
	g := NewTileGrid(At(4, 4, 1))
	c := At(2, 3, 0)
	g.SetTile(c, floor())

	g.SetRevealed(c, true)
	g.SetVisible(c, true)

	tile, ok := g.Get(c)
	require.True(t, ok)
	assert.True(t, tile.Visible)
	assert.True(t, tile.Revealed)

	g.SetVisible(c, false)
	tile, _ = g.Get(c)
	assert.False(t, tile.Visible)
	assert.True(t, tile.Revealed)
}

// ResetVisibility covers the whole floor, including the last row and column.
func TestTileGridResetVisibilityFullExtent(t *testing.T) {
	g := NewTileGrid(At(150, 100, 2))
	corners := []Coordinate{At(0, 0, 0), At(149, 0, 0), At(0, 99, 0), At(149, 99, 0)}
	other := At(149, 99, 1)

	for _, c := range append(corners, other) {
		g.SetTile(c, floor())
		g.SetRevealed(c, true)
		g.SetVisible(c, true)
	}

	g.ResetVisibility(0)

	for _, c := range corners {
		tile, ok := g.Get(c)
		require.True(t, ok)
		assert.False(t, tile.Visible, "tile %v still visible", c)
		assert.True(t, tile.Revealed, "tile %v lost its revealed flag", c)
	}

	tile, _ := g.Get(other)
	assert.True(t, tile.Visible, "reset of floor 0 must not touch floor 1")

	assert.NotPanics(t, func() {
		g.ResetVisibility(-1)
		g.ResetVisibility(2)
	})
}

func TestTileGridResetMemory(t *testing.T) {
	g := NewTileGrid(At(5, 5, 2))
	for _, c := range []Coordinate{At(1, 1, 0), At(4, 4, 1)} {
		g.SetTile(c, floor())
		g.SetRevealed(c, true)
		g.SetVisible(c, true)
	}

	g.ResetMemory()

	g.Each(0, func(c Coordinate, tile Tile) {
		assert.False(t, tile.Visible)
		assert.False(t, tile.Revealed)
	})
	g.Each(1, func(c Coordinate, tile Tile) {
		assert.False(t, tile.Visible)
		assert.False(t, tile.Revealed)
	})
}

func TestTileGridEachSkipsUnallocated(t *testing.T) {
	g := NewTileGrid(At(5, 5, 1))
	g.SetTile(At(1, 2, 0), floor())
	g.SetTile(At(3, 0, 0), DefaultPalette().Wall)

	var seen []Coordinate
	g.Each(0, func(c Coordinate, _ Tile) { seen = append(seen, c) })

	assert.Equal(t, []Coordinate{At(3, 0, 0), At(1, 2, 0)}, seen)
}

func TestRectangle(t *testing.T) {
	r := NewRectangle(At(2, 4, 0), 6, 5)

	assert.Equal(t, At(8, 9, 0), r.CornerTwo)
	assert.Equal(t, At(5, 6, 0), r.Center())
	assert.True(t, r.Contains(At(3, 5, 0)))
	assert.True(t, r.Contains(At(8, 9, 0)))
	assert.False(t, r.Contains(At(2, 5, 0)), "corner_one row/column is not carved")
	assert.False(t, r.Contains(At(3, 5, 1)), "other floors never match")

	tests := []struct {
		name  string
		other Rectangle
		want  bool
	}{
		{"disjoint", NewRectangle(At(20, 20, 0), 3, 3), false},
		{"shared edge", NewRectangle(At(8, 4, 0), 3, 3), true},
		{"shared corner", NewRectangle(At(8, 9, 0), 2, 2), true},
		{"one apart", NewRectangle(At(9, 4, 0), 3, 3), false},
		{"contained", NewRectangle(At(3, 5, 0), 1, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(r))
		})
	}
}

func TestRoomIndexAt(t *testing.T) {
	rooms := []Rectangle{
		NewRectangle(At(1, 1, 0), 5, 5),
		NewRectangle(At(10, 1, 0), 5, 5),
	}

	assert.Equal(t, 0, RoomIndexAt(rooms, At(3, 3, 0)))
	assert.Equal(t, 1, RoomIndexAt(rooms, At(15, 6, 0)))
	assert.Equal(t, -1, RoomIndexAt(rooms, At(8, 3, 0)), "corridor between rooms")
	assert.Equal(t, -1, RoomIndexAt(rooms, At(1, 1, 0)), "corner_one is not interior")
	assert.Equal(t, -1, RoomIndexAt(rooms, At(3, 3, 1)))
	assert.Equal(t, -1, RoomIndexAt(nil, At(3, 3, 0)))
}
