package terrain

// Grid is the classified terrain map. Cells are stored in row-major order:
// index = y*W + x. The zero value of a cell is Water, so a fresh grid is
// all water.
type Grid struct {
	W, H  int
	Cells []Type
}

// NewGrid creates an all-water grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Type, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.W + x
}

// InBounds returns true if (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the terrain type at (x, y). Out-of-bounds coordinates are water.
func (g *Grid) At(x, y int) Type {
	if !g.InBounds(x, y) {
		return Water
	}
	return g.Cells[g.index(x, y)]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Type, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells of the given type.
func (g *Grid) Count(t Type) int {
	count := 0
	for _, c := range g.Cells {
		if c == t {
			count++
		}
	}
	return count
}

// Distribution holds per-type cell counts for a classified grid.
type Distribution struct {
	Water   int
	Shallow int
	Land    int
}

// Distribution counts all three terrain types in a single pass.
func (g *Grid) Distribution() Distribution {
	var d Distribution
	for _, c := range g.Cells {
		switch c {
		case Water:
			d.Water++
		case Shallow:
			d.Shallow++
		case Land:
			d.Land++
		}
	}
	return d
}

// Total returns the total number of cells counted.
func (d Distribution) Total() int {
	return d.Water + d.Shallow + d.Land
}

// Percent returns the share of the given type as a percentage of all cells.
// Returns 0 for an empty grid.
func (d Distribution) Percent(t Type) float64 {
	total := d.Total()
	if total == 0 {
		return 0
	}
	var n int
	switch t {
	case Water:
		n = d.Water
	case Shallow:
		n = d.Shallow
	case Land:
		n = d.Land
	}
	return float64(n) / float64(total) * 100
}
