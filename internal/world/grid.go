package world

import "fmt"

// neighborOffsets defines the four adjacent offsets, in fixed order.
// Traversal order matters: river carving draws jitter per neighbor, so
// reordering these changes every downstream random value.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid holds the complete tile grid in row-major order (y outer, x inner).
type Grid struct {
	Width  int
	Height int
	Tiles  []*Tile
}

// NewGrid allocates an empty grid; tiles are filled by BuildTerrain.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]*Tile, 0, width*height),
	}
}

// Idx maps (x, y) to the row-major tile index.
func (g *Grid) Idx(x, y int) int {
	return y*g.Width + x
}

// At returns the tile at (x, y). Callers must pass in-bounds coordinates.
func (g *Grid) At(x, y int) *Tile {
	return g.Tiles[g.Idx(x, y)]
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Neighbors returns the in-bounds 4-neighbors of (x, y) in fixed order.
func (g *Grid) Neighbors(x, y int) []*Tile {
	out := make([]*Tile, 0, 4)
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, g.At(nx, ny))
		}
	}
	return out
}

// Area returns the total tile count.
func (g *Grid) Area() int {
	return g.Width * g.Height
}

// IsBorderTile reports whether t is owned and touches a tile with a
// different owner (including unclaimed tiles).
func (g *Grid) IsBorderTile(t *Tile) bool {
	if t.RealmID == "" {
		return false
	}
	for _, n := range g.Neighbors(t.X, t.Y) {
		if n.RealmID != t.RealmID {
			return true
		}
	}
	return false
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, tiles=%d)", g.Width, g.Height, len(g.Tiles))
}
