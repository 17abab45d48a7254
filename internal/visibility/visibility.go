// Package visibility recomputes entity viewsheds and the map's fog of war.
package visibility

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/deepfloor/internal/entity"
	"github.com/samdwyer/deepfloor/internal/fov"
	"github.com/samdwyer/deepfloor/internal/telemetry"
	"github.com/samdwyer/deepfloor/internal/world"
)

// Viewers iterates every entity that has both a position and a viewshed.
type Viewers interface {
	EachViewer(fn func(id entity.ID, pos world.Coordinate, vs *entity.Viewshed, isPlayer bool))
}

// Recompute refreshes every dirty viewshed and returns how many were
// refreshed. Clean viewsheds are skipped. A player's sight first clears
// the visible flags of its floor, then marks what it sees as visible and
// revealed. Other viewers only update their own viewshed.
func Recompute(ctx context.Context, grid *world.TileGrid, viewers Viewers) int {
	_, span := telemetry.Tracer("visibility").Start(ctx, "visibility.recompute")
	defer span.End()

	recomputed, revealed := 0, 0
	viewers.EachViewer(func(_ entity.ID, pos world.Coordinate, vs *entity.Viewshed, isPlayer bool) {
		if !vs.Dirty {
			return
		}

		if isPlayer {
			grid.ResetVisibility(pos.Z)
		}

		if vs.VisibleTiles == nil {
			vs.VisibleTiles = make(map[world.Coordinate]struct{})
		} else {
			clear(vs.VisibleTiles)
		}
		fov.Compute(grid, pos, vs.Range, vs.VisibleTiles)

		if isPlayer {
			for c := range vs.VisibleTiles {
				if t, ok := grid.Get(c); ok && !t.Revealed {
					revealed++
				}
				grid.SetRevealed(c, true)
				grid.SetVisible(c, true)
			}
		}

		vs.Dirty = false
		recomputed++
	})

	span.SetAttributes(
		attribute.Int("visibility.recomputed", recomputed),
		attribute.Int("visibility.newly_revealed", revealed),
	)
	return recomputed
}
