package world

import "fmt"

// Coordinate addresses a cell in the tile grid. Z selects the floor.
type Coordinate struct {
	X, Y, Z int
}

// At is shorthand for building a Coordinate.
func At(x, y, z int) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Add returns the coordinate offset by dx, dy on the same floor.
func (c Coordinate) Add(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
}

// String implements fmt.Stringer.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
