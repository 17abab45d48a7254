package world

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsAround(g *TileGrid, c Coordinate) map[Coordinate]TileKind {
	out := make(map[Coordinate]TileKind)
	for _, n := range ProbeFull.neighbors(c) {
		if t, ok := g.Get(n); ok {
			out[n] = t.Kind
		}
	}
	return out
}

func TestDeriveWallsFullProbe(t *testing.T) {
	g := NewTileGrid(At(5, 5, 1))
	center := At(2, 2, 0)
	g.SetTile(center, floor())

	placed := DeriveWalls(context.Background(), g, ProbeFull, DefaultPalette().Wall)

	assert.Equal(t, 8, placed)
	around := kindsAround(g, center)
	require.Len(t, around, 8)
	for c, kind := range around {
		assert.Equal(t, TileWall, kind, "neighbor %v", c)
	}
}

// The legacy probe never walls the west and east neighbors.
func TestDeriveWallsLegacyProbe(t *testing.T) {
	g := NewTileGrid(At(5, 5, 1))
	center := At(2, 2, 0)
	g.SetTile(center, floor())

	placed := DeriveWalls(context.Background(), g, ProbeLegacy, DefaultPalette().Wall)

	assert.Equal(t, 6, placed)
	want := map[Coordinate]TileKind{
		At(1, 1, 0): TileWall, At(2, 1, 0): TileWall, At(3, 1, 0): TileWall,
		At(1, 3, 0): TileWall, At(2, 3, 0): TileWall, At(3, 3, 0): TileWall,
	}
	assert.Equal(t, want, kindsAround(g, center))
}

func TestDeriveWallsLegacyProbeAtOrigin(t *testing.T) {
	g := NewTileGrid(At(3, 3, 1))
	g.SetTile(At(0, 0, 0), floor())

	placed := DeriveWalls(context.Background(), g, ProbeLegacy, DefaultPalette().Wall)

	assert.Equal(t, 2, placed)
	assert.Equal(t, map[Coordinate]TileKind{
		At(0, 1, 0): TileWall,
		At(1, 1, 0): TileWall,
	}, kindsAround(g, At(0, 0, 0)))
}

func TestDeriveWallsKeepsExistingTiles(t *testing.T) {
	g := NewTileGrid(At(6, 3, 1))
	for x := 1; x <= 4; x++ {
		g.SetTile(At(x, 1, 0), floor())
	}

	DeriveWalls(context.Background(), g, ProbeFull, DefaultPalette().Wall)

	for x := 1; x <= 4; x++ {
		assert.True(t, g.IsPassable(At(x, 1, 0)), "floor at x=%d was overwritten", x)
	}
	for x := 0; x <= 5; x++ {
		assert.True(t, g.IsOpaque(At(x, 0, 0)))
		assert.True(t, g.IsOpaque(At(x, 2, 0)))
	}
}

func TestDeriveWallsForcesWallFlags(t *testing.T) {
	g := NewTileGrid(At(3, 3, 1))
	g.SetTile(At(1, 1, 0), floor())

	template := floor()
	template.Glyph = '#'
	DeriveWalls(context.Background(), g, ProbeFull, template)

	wall, ok := g.Get(At(0, 0, 0))
	require.True(t, ok)
	assert.Equal(t, TileWall, wall.Kind)
	assert.Equal(t, '#', wall.Glyph)
	assert.False(t, wall.Passable)
	assert.True(t, wall.Opaque)
}

func TestParseWallProbe(t *testing.T) {
	tests := []struct {
		input   string
		want    WallProbe
		wantErr bool
	}{
		{"", ProbeFull, false},
		{"full", ProbeFull, false},
		{"legacy", ProbeLegacy, false},
		{"diagonal", ProbeFull, true},
	}

	for _, tt := range tests {
		got, err := ParseWallProbe(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "ParseWallProbe(%q)", tt.input)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want, mustParse(t, got.String()))
	}
}

func mustParse(t *testing.T, name string) WallProbe {
	t.Helper()
	p, err := ParseWallProbe(name)
	require.NoError(t, err)
	return p
}
