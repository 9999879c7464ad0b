package terrain

// Mask is a boolean land grid derived from a thresholded image.
// Cells are stored in row-major order: index = y*W + x. True means land.
// A Mask is built once and never mutated by the classification passes.
type Mask struct {
	W, H  int
	Cells []bool
}

// NewMask creates an all-water mask with the given dimensions.
func NewMask(w, h int) *Mask {
	return &Mask{
		W:     w,
		H:     h,
		Cells: make([]bool, w*h),
	}
}

// index converts a coordinate to a flat array index.
func (m *Mask) index(x, y int) int {
	return y*m.W + x
}

// InBounds returns true if (x, y) is within the mask boundaries.
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// At returns true if the cell at (x, y) is land.
// Out-of-bounds coordinates are water.
func (m *Mask) At(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Cells[m.index(x, y)]
}

// Set marks the cell at (x, y) as land or water.
func (m *Mask) Set(x, y int, land bool) {
	if m.InBounds(x, y) {
		m.Cells[m.index(x, y)] = land
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	cells := make([]bool, len(m.Cells))
	copy(cells, m.Cells)
	return &Mask{W: m.W, H: m.H, Cells: cells}
}

// LandCount returns the number of land cells in the mask.
func (m *Mask) LandCount() int {
	count := 0
	for _, land := range m.Cells {
		if land {
			count++
		}
	}
	return count
}

// Equal returns true if two masks have the same dimensions and contents.
func (m *Mask) Equal(other *Mask) bool {
	if m.W != other.W || m.H != other.H {
		return false
	}
	for i, land := range m.Cells {
		if land != other.Cells[i] {
			return false
		}
	}
	return true
}
