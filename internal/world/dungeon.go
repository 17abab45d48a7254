package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deepfloor/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 150
	DefaultHeight = 100
	DefaultDepth  = 2

	// Default room placement parameters
	DefaultRoomCount   = 20
	DefaultMinRoomSize = 5
	DefaultMaxRoomSize = 10

	// maxPlacementAttempts bounds the retries spent on a single room.
	maxPlacementAttempts = 100
)

// MaxCells caps the number of cells a grid may hold across all floors.
const MaxCells = 1 << 24

// ErrInvalidParams is returned when generation parameters cannot produce a map.
var ErrInvalidParams = errors.New("invalid dungeon parameters")

// Params controls dungeon generation.
type Params struct {
	Size        Coordinate // Exclusive grid extent on every axis
	RoomCount   int        // Rooms to attempt; fewer may be placed
	MinRoomSize int        // Smallest room width/height
	MaxRoomSize int        // Largest room width/height
	Probe       WallProbe  // Neighbor set used by DeriveWalls
	Palette     Palette    // Tile templates; zero value means DefaultPalette
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		Size:        Coordinate{X: DefaultWidth, Y: DefaultHeight, Z: DefaultDepth},
		RoomCount:   DefaultRoomCount,
		MinRoomSize: DefaultMinRoomSize,
		MaxRoomSize: DefaultMaxRoomSize,
		Probe:       ProbeFull,
		Palette:     DefaultPalette(),
	}
}

// Validate checks that a room of every allowed size fits inside the grid
// with a one tile margin on each side.
func (p Params) Validate() error {
	switch {
	case p.RoomCount < 0:
		return fmt.Errorf("%w: room count %d is negative", ErrInvalidParams, p.RoomCount)
	case p.MinRoomSize < 1:
		return fmt.Errorf("%w: min room size %d must be at least 1", ErrInvalidParams, p.MinRoomSize)
	case p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("%w: max room size %d is below min room size %d", ErrInvalidParams, p.MaxRoomSize, p.MinRoomSize)
	case p.Size.Z < 1:
		return fmt.Errorf("%w: map depth %d must be at least 1", ErrInvalidParams, p.Size.Z)
	case p.MaxRoomSize+3 > p.Size.X || p.MaxRoomSize+3 > p.Size.Y:
		return fmt.Errorf("%w: max room size %d does not fit a %dx%d map", ErrInvalidParams, p.MaxRoomSize, p.Size.X, p.Size.Y)
	case p.Size.X > MaxCells/p.Size.Y/p.Size.Z:
		return fmt.Errorf("%w: map %s exceeds %d cells", ErrInvalidParams, p.Size, MaxCells)
	}
	if !p.Probe.valid() {
		return fmt.Errorf("%w: unknown wall probe %d", ErrInvalidParams, p.Probe)
	}
	return nil
}

// Dungeon is a generated map together with the rooms placed on it.
type Dungeon struct {
	Grid    *TileGrid
	Rooms   []Rectangle // In placement order; consecutive rooms are joined by a corridor
	Dropped int         // Rooms abandoned after exhausting their placement attempts

	rng     *rand.Rand
	palette Palette
}

// Generate builds a complete dungeon: rooms and corridors on floor 0,
// followed by wall derivation around every passable tile.
func Generate(ctx context.Context, rng *rand.Rand, p Params) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d, err := CarveRooms(ctx, rng, p)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	DeriveWalls(ctx, d.Grid, p.Probe, d.palette.Wall)

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Size.X),
		attribute.Int("dungeon.height", p.Size.Y),
		attribute.Int("dungeon.depth", p.Size.Z),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rooms_dropped", d.Dropped),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return d, nil
}

// CarveRooms places up to p.RoomCount non-overlapping rooms on floor 0 and
// joins each to its predecessor with an L-shaped corridor. No walls are added.
// A room that cannot be placed within the attempt budget is dropped, so the
// result may hold fewer rooms than requested.
func CarveRooms(ctx context.Context, rng *rand.Rand, p Params) (*Dungeon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Palette == (Palette{}) {
		p.Palette = DefaultPalette()
	}

	_, span := telemetry.Tracer("world").Start(ctx, "dungeon.carve_rooms")
	defer span.End()

	d := &Dungeon{
		Grid:    NewTileGrid(p.Size),
		Rooms:   make([]Rectangle, 0, p.RoomCount),
		rng:     rng,
		palette: p.Palette,
	}

	for i := 0; i < p.RoomCount; i++ {
		room, ok := d.placeRoom(p)
		if !ok {
			d.Dropped++
			continue
		}

		d.carveRoom(room)
		if len(d.Rooms) > 0 {
			d.carveCorridor(room.Center(), d.Rooms[len(d.Rooms)-1].Center())
		}
		d.Rooms = append(d.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.rooms_requested", p.RoomCount),
		attribute.Int("dungeon.rooms_placed", len(d.Rooms)),
	)
	return d, nil
}

// placeRoom samples candidate rooms until one clears every placed room.
func (d *Dungeon) placeRoom(p Params) (Rectangle, bool) {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		width := p.MinRoomSize + d.rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)
		height := p.MinRoomSize + d.rng.Intn(p.MaxRoomSize-p.MinRoomSize+1)

		// Top-left in [1, size-(extent+1)) keeps a wall's width free on each side.
		topLeft := Coordinate{
			X: 1 + d.rng.Intn(p.Size.X-width-2),
			Y: 1 + d.rng.Intn(p.Size.Y-height-2),
			Z: 0,
		}
		candidate := NewRectangle(topLeft, width, height)

		if !d.overlapsAny(candidate) {
			return candidate, true
		}
	}
	return Rectangle{}, false
}

// overlapsAny returns true if r intersects an already placed room.
func (d *Dungeon) overlapsAny(r Rectangle) bool {
	for _, other := range d.Rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the room interior to floor.
func (d *Dungeon) carveRoom(room Rectangle) {
	z := room.CornerOne.Z
	for y := room.CornerOne.Y + 1; y <= room.CornerTwo.Y; y++ {
		for x := room.CornerOne.X + 1; x <= room.CornerTwo.X; x++ {
			d.Grid.SetTile(Coordinate{X: x, Y: y, Z: z}, d.palette.Floor)
		}
	}
}

// carveCorridor joins from and to: a horizontal run along from.Y, then a
// vertical run along to.X. Both runs include their end points.
func (d *Dungeon) carveCorridor(from, to Coordinate) {
	d.carveHorizontalTunnel(from.X, to.X, from.Y, from.Z)
	d.carveVerticalTunnel(from.Y, to.Y, to.X, from.Z)
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y, z int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Grid.SetTile(Coordinate{X: x, Y: y, Z: z}, d.palette.Floor)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x, z int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Grid.SetTile(Coordinate{X: x, Y: y, Z: z}, d.palette.Floor)
	}
}

// StartPosition returns the center of the first placed room.
func (d *Dungeon) StartPosition() (Coordinate, bool) {
	if len(d.Rooms) == 0 {
		return Coordinate{}, false
	}
	return d.Rooms[0].Center(), true
}
