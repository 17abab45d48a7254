package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deepfloor/internal/telemetry"
)

// WallProbe selects which neighbors of a passable tile receive walls.
type WallProbe int

const (
	// ProbeFull probes all eight neighbors.
	ProbeFull WallProbe = iota
	// ProbeLegacy reproduces the lopsided probe set of the first map
	// builder: no west or east neighbors, north and south each listed
	// twice, and everything above or left of the tile gated on x>0 / y>0.
	ProbeLegacy
)

// String returns the config name of the probe.
func (p WallProbe) String() string {
	switch p {
	case ProbeFull:
		return "full"
	case ProbeLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseWallProbe converts a config name to a WallProbe.
func ParseWallProbe(name string) (WallProbe, error) {
	switch name {
	case "", "full":
		return ProbeFull, nil
	case "legacy":
		return ProbeLegacy, nil
	default:
		return ProbeFull, fmt.Errorf("unknown wall probe %q", name)
	}
}

func (p WallProbe) valid() bool {
	return p == ProbeFull || p == ProbeLegacy
}

var fullOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// neighbors returns the probed coordinates around c. Coordinates outside
// the grid are filtered later by the grid accessors.
func (p WallProbe) neighbors(c Coordinate) []Coordinate {
	if p == ProbeLegacy {
		out := make([]Coordinate, 0, 8)
		if c.X > 0 && c.Y > 0 {
			out = append(out, c.Add(-1, -1))
		}
		if c.X > 0 {
			out = append(out, c.Add(-1, 1))
		}
		if c.Y > 0 {
			out = append(out, c.Add(0, -1), c.Add(1, -1), c.Add(0, -1))
		}
		return append(out, c.Add(0, 1), c.Add(1, 1), c.Add(0, 1))
	}

	out := make([]Coordinate, 0, len(fullOffsets))
	for _, o := range fullOffsets {
		out = append(out, c.Add(o[0], o[1]))
	}
	return out
}

// DeriveWalls surrounds passable tiles with walls: every probed neighbor
// that is inside the grid and still unallocated becomes a copy of wall.
// The wall template is forced impassable and opaque.
func DeriveWalls(ctx context.Context, g *TileGrid, probe WallProbe, wall Tile) int {
	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.derive_walls")
	defer span.End()

	wall.Kind = TileWall
	wall.Passable = false
	wall.Opaque = true
	wall.Visible = false
	wall.Revealed = false

	placed := 0
	for z := 0; z < g.Size.Z; z++ {
		for y := 0; y < g.Size.Y; y++ {
			for x := 0; x < g.Size.X; x++ {
				c := Coordinate{X: x, Y: y, Z: z}
				if !g.IsPassable(c) {
					continue
				}
				for _, n := range probe.neighbors(c) {
					if !g.InBounds(n) {
						continue
					}
					if _, ok := g.Get(n); !ok {
						g.SetTile(n, wall)
						placed++
					}
				}
			}
		}
	}

	span.SetAttributes(
		attribute.String("dungeon.wall_probe", probe.String()),
		attribute.Int("dungeon.walls_placed", placed),
	)
	return placed
}
