package world

// TileGrid is the layered map. Cells live in one flat slice addressed
// through index; Size is the exclusive upper bound on every axis.
type TileGrid struct {
	Size  Coordinate
	tiles []Tile
}

// NewTileGrid creates a grid with every cell unallocated.
// Negative extents are treated as zero.
func NewTileGrid(size Coordinate) *TileGrid {
	size.X = max(size.X, 0)
	size.Y = max(size.Y, 0)
	size.Z = max(size.Z, 0)
	return &TileGrid{
		Size:  size,
		tiles: make([]Tile, size.X*size.Y*size.Z),
	}
}

// InBounds returns true if the coordinate addresses a cell of the grid.
func (g *TileGrid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Size.X &&
		c.Y >= 0 && c.Y < g.Size.Y &&
		c.Z >= 0 && c.Z < g.Size.Z
}

// index returns the slice offset for c, or -1 if c is outside the grid.
func (g *TileGrid) index(c Coordinate) int {
	if !g.InBounds(c) {
		return -1
	}
	return (c.Z*g.Size.Y+c.Y)*g.Size.X + c.X
}

// Get returns the tile at c. The boolean is false both for coordinates
// outside the grid and for unallocated cells.
func (g *TileGrid) Get(c Coordinate) (Tile, bool) {
	i := g.index(c)
	if i < 0 || !g.tiles[i].Allocated() {
		return Tile{}, false
	}
	return g.tiles[i], true
}

// SetTile stores t at c. Out-of-range coordinates are ignored.
func (g *TileGrid) SetTile(c Coordinate, t Tile) {
	if i := g.index(c); i >= 0 {
		g.tiles[i] = t
	}
}

// SetVisible sets the visible flag of the tile at c. Unallocated and
// out-of-range cells are left alone.
func (g *TileGrid) SetVisible(c Coordinate, visible bool) {
	if t := g.at(c); t != nil {
		t.Visible = visible
	}
}

// SetRevealed sets the revealed flag of the tile at c. Unallocated and
// out-of-range cells are left alone.
func (g *TileGrid) SetRevealed(c Coordinate, revealed bool) {
	if t := g.at(c); t != nil {
		t.Revealed = revealed
	}
}

// IsPassable returns true if the tile at c exists and can be walked on.
func (g *TileGrid) IsPassable(c Coordinate) bool {
	t, ok := g.Get(c)
	return ok && t.Passable
}

// IsOpaque returns true if the tile at c blocks line of sight.
// Unallocated cells are transparent; callers decide how to treat
// coordinates outside the grid.
func (g *TileGrid) IsOpaque(c Coordinate) bool {
	t, ok := g.Get(c)
	return ok && t.Opaque
}

// ResetVisibility clears the visible flag on every tile of floor z.
// Revealed flags are untouched.
func (g *TileGrid) ResetVisibility(z int) {
	if z < 0 || z >= g.Size.Z {
		return
	}
	layer := g.Size.X * g.Size.Y
	for i := z * layer; i < (z+1)*layer; i++ {
		g.tiles[i].Visible = false
	}
}

// ResetMemory clears both visible and revealed on every tile of every floor.
func (g *TileGrid) ResetMemory() {
	for i := range g.tiles {
		g.tiles[i].Visible = false
		g.tiles[i].Revealed = false
	}
}

// Each calls fn for every allocated tile on floor z in row-major order.
func (g *TileGrid) Each(z int, fn func(c Coordinate, t Tile)) {
	if z < 0 || z >= g.Size.Z {
		return
	}
	for y := 0; y < g.Size.Y; y++ {
		for x := 0; x < g.Size.X; x++ {
			c := Coordinate{X: x, Y: y, Z: z}
			if t := g.tiles[g.index(c)]; t.Allocated() {
				fn(c, t)
			}
		}
	}
}

// at returns a pointer to the allocated tile at c, or nil.
func (g *TileGrid) at(c Coordinate) *Tile {
	i := g.index(c)
	if i < 0 || !g.tiles[i].Allocated() {
		return nil
	}
	return &g.tiles[i]
}
