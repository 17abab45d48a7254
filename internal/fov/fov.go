// Package fov computes field of view with recursive shadowcasting.
//
// The scan walks the eight octants around the origin row by row, tracking
// the slopes still in view. An opaque cell is itself visible but narrows
// the slopes available to the rows behind it. Cells are included when
// their Euclidean distance from the origin is at most the radius.
package fov

import "github.com/samdwyer/deepfloor/internal/world"

// Map is the view of the tile grid the scan needs.
type Map interface {
	InBounds(c world.Coordinate) bool
	IsOpaque(c world.Coordinate) bool
}

// octant transforms (xx, xy, yx, yy) map scan-local (dx, dy) to grid offsets.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Compute adds every cell visible from origin within radius to visible.
// Only the origin's floor is scanned. Coordinates outside the map are
// never added and block sight. The origin is visible whenever it is in
// bounds, even with a zero radius.
func Compute(m Map, origin world.Coordinate, radius int, visible map[world.Coordinate]struct{}) {
	if !m.InBounds(origin) {
		return
	}
	visible[origin] = struct{}{}
	if radius <= 0 {
		return
	}

	s := scan{m: m, origin: origin, radius: radius, visible: visible}
	for _, o := range octants {
		s.castLight(1, 1.0, 0.0, o)
	}
}

type scan struct {
	m       Map
	origin  world.Coordinate
	radius  int
	visible map[world.Coordinate]struct{}
}

// blocked reports whether c stops sight. Out-of-range cells block.
func (s *scan) blocked(c world.Coordinate) bool {
	return !s.m.InBounds(c) || s.m.IsOpaque(c)
}

func (s *scan) castLight(row int, start, end float64, o [4]int) {
	if start < end {
		return
	}
	xx, xy, yx, yy := o[0], o[1], o[2], o[3]
	radiusSq := s.radius * s.radius
	newStart := 0.0

	for j := row; j <= s.radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			c := world.Coordinate{
				X: s.origin.X + dx*xx + dy*xy,
				Y: s.origin.Y + dx*yx + dy*yy,
				Z: s.origin.Z,
			}
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rightSlope {
				continue
			}
			if end > leftSlope {
				break
			}

			if dx*dx+dy*dy <= radiusSq && s.m.InBounds(c) {
				s.visible[c] = struct{}{}
			}

			if blocked {
				if s.blocked(c) {
					newStart = rightSlope
					continue
				}
				blocked = false
				start = newStart
			} else if s.blocked(c) && j < s.radius {
				blocked = true
				s.castLight(j+1, start, leftSlope, o)
				newStart = rightSlope
			}
		}

		if blocked {
			break
		}
	}
}

// InRange reports whether c is within radius of origin under the metric
// Compute uses. Floors are not compared.
func InRange(origin, c world.Coordinate, radius int) bool {
	dx, dy := c.X-origin.X, c.Y-origin.Y
	return dx*dx+dy*dy <= radius*radius
}
