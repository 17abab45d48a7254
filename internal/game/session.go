package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deepfloor/internal/entity"
	"github.com/samdwyer/deepfloor/internal/telemetry"
	"github.com/samdwyer/deepfloor/internal/visibility"
	"github.com/samdwyer/deepfloor/internal/world"
)

// ErrNoRooms is returned when generation placed no room to start in.
var ErrNoRooms = errors.New("dungeon has no rooms")

// Session is the explicit game context handed to every phase: the shared
// grid, the placed rooms and the entity registry.
type Session struct {
	Grid     *world.TileGrid
	Rooms    []world.Rectangle
	Registry *entity.Registry
	Player   entity.ID

	phase Phase
}

// NewSession generates a dungeon and places the player at the center of
// the first room.
func NewSession(ctx context.Context, cfg Config, rng *rand.Rand) (*Session, error) {
	ctx, span := telemetry.Tracer("game").Start(ctx, "session.new")
	defer span.End()

	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	dungeon, err := world.Generate(ctx, rng, params)
	if err != nil {
		return nil, fmt.Errorf("generating dungeon: %w", err)
	}

	start, ok := dungeon.StartPosition()
	if !ok {
		return nil, ErrNoRooms
	}

	reg := entity.NewRegistry()
	player := entity.NewPlayer(reg, start, cfg.Player.ViewRange)

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(dungeon.Rooms)),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	slog.InfoContext(ctx, "dungeon generated",
		"rooms", len(dungeon.Rooms),
		"dropped", dungeon.Dropped,
		"size", params.Size.String(),
		"wall_probe", params.Probe.String(),
		"start", start.String(),
	)

	return &Session{
		Grid:     dungeon.Grid,
		Rooms:    dungeon.Rooms,
		Registry: reg,
		Player:   player,
		phase:    PhaseSetup,
	}, nil
}

// Phase returns the phase the session last entered.
func (s *Session) Phase() Phase {
	return s.phase
}

// PlayerPosition returns where the player stands.
func (s *Session) PlayerPosition() world.Coordinate {
	if pos := s.Registry.Positions.Get(s.Player); pos != nil {
		return *pos
	}
	return world.Coordinate{}
}

// MovePlayer runs the input phase for a directional command.
func (s *Session) MovePlayer(dx, dy int) bool {
	s.phase = PhaseInput
	return TryMove(s.Grid, s.Registry, s.Player, dx, dy)
}

// UpdateVisibility runs the visibility phase.
func (s *Session) UpdateVisibility(ctx context.Context) int {
	s.phase = PhaseVisibility
	return visibility.Recompute(ctx, s.Grid, s.Registry)
}

// Restart begins a new game on the existing grid. Fog of war is cleared,
// the player returns to the first room and every viewshed is marked dirty.
func (s *Session) Restart(ctx context.Context) {
	slog.InfoContext(ctx, "restarting on existing map", "from_phase", s.phase.String())

	s.phase = PhaseSetup
	s.Grid.ResetMemory()
	if pos := s.Registry.Positions.Get(s.Player); pos != nil {
		*pos = s.Rooms[0].Center()
	}
	s.Registry.EachViewer(func(_ entity.ID, _ world.Coordinate, vs *entity.Viewshed, _ bool) {
		vs.Dirty = true
	})
}

// BeginRender enters the read-only render phase.
func (s *Session) BeginRender() {
	s.phase = PhaseRender
}

// Status returns the footer line for the current frame.
func (s *Session) Status() string {
	pos := s.PlayerPosition()
	room := "corridor"
	if i := world.RoomIndexAt(s.Rooms, pos); i >= 0 {
		room = fmt.Sprintf("room %d/%d", i+1, len(s.Rooms))
	}
	return fmt.Sprintf("Floor %d  (%d,%d)  %s  [arrows/hjklyubn move, r restart, q quit]", pos.Z+1, pos.X, pos.Y, room)
}
