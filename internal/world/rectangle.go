package world

// Rectangle is an axis-aligned room footprint on a single floor.
// CornerOne is the top-left corner, CornerTwo the bottom-right.
type Rectangle struct {
	CornerOne Coordinate
	CornerTwo Coordinate
}

// NewRectangle creates a rectangle from a top-left corner and a size.
func NewRectangle(topLeft Coordinate, width, height int) Rectangle {
	return Rectangle{
		CornerOne: topLeft,
		CornerTwo: Coordinate{X: topLeft.X + width, Y: topLeft.Y + height, Z: topLeft.Z},
	}
}

// Center returns the midpoint of the rectangle on CornerOne's floor.
func (r Rectangle) Center() Coordinate {
	return Coordinate{
		X: (r.CornerOne.X + r.CornerTwo.X) / 2,
		Y: (r.CornerOne.Y + r.CornerTwo.Y) / 2,
		Z: r.CornerOne.Z,
	}
}

// Intersects reports whether r overlaps other. Edges are inclusive, so
// rectangles that share a border row or column count as overlapping.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.CornerOne.X <= other.CornerTwo.X &&
		r.CornerTwo.X >= other.CornerOne.X &&
		r.CornerOne.Y <= other.CornerTwo.Y &&
		r.CornerTwo.Y >= other.CornerOne.Y
}

// Contains returns true if the given point lies within the carved interior.
func (r Rectangle) Contains(c Coordinate) bool {
	return c.Z == r.CornerOne.Z &&
		c.X > r.CornerOne.X && c.X <= r.CornerTwo.X &&
		c.Y > r.CornerOne.Y && c.Y <= r.CornerTwo.Y
}

// RoomIndexAt returns the index of the first room whose interior contains c,
// or -1 when c lies outside every room.
func RoomIndexAt(rooms []Rectangle, c Coordinate) int {
	for i, room := range rooms {
		if room.Contains(c) {
			return i
		}
	}
	return -1
}
