package terrain

// Classify computes the terrain grid for a land mask and a shallow-water
// buffer radius. Land cells are copied from the mask unchanged. Every other
// cell becomes Shallow iff at least one land cell lies within Euclidean
// distance radius (inclusive), and stays Water otherwise, so the shallow band
// is a disk of the given radius around every land cell.
//
// A radius of zero (or below) promotes nothing: the only cell at distance
// zero from land is the land cell itself.
//
// The work is done by stamping the disk of offsets around each land cell,
// which is equivalent to scanning the window around each water cell but
// proportional to the amount of land instead of the amount of water. For
// large radii it switches to the distance-transform path, which costs
// O(W*H) regardless of radius.
func Classify(mask *Mask, radius int) *Grid {
	grid := landOnly(mask)
	if radius <= 0 {
		return grid
	}
	// Distances inside the grid never exceed W+H, so a larger radius
	// behaves identically to W+H and only wastes offset memory.
	if radius > mask.W+mask.H {
		radius = mask.W + mask.H
	}

	window := (2*radius + 1) * (2*radius + 1)
	if window >= mask.W*mask.H {
		return classifyTransform(grid, mask, radius)
	}

	offsets := diskOffsets(radius)
	if mask.LandCount()*len(offsets) > 4*mask.W*mask.H {
		return classifyTransform(grid, mask, radius)
	}

	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if !mask.Cells[y*mask.W+x] {
				continue
			}
			for _, off := range offsets {
				nx, ny := x+off[0], y+off[1]
				if !grid.InBounds(nx, ny) {
					continue
				}
				i := ny*grid.W + nx
				if grid.Cells[i] == Water {
					grid.Cells[i] = Shallow
				}
			}
		}
	}
	return grid
}

// ClassifyTransform classifies via the exact squared Euclidean distance
// transform. It produces the same grid as Classify for every mask and radius;
// Classify already delegates here when that is the cheaper route, so calling
// this directly is only useful for benchmarks and cross-checks.
func ClassifyTransform(mask *Mask, radius int) *Grid {
	grid := landOnly(mask)
	if radius <= 0 {
		return grid
	}
	if radius > mask.W+mask.H {
		radius = mask.W + mask.H
	}
	return classifyTransform(grid, mask, radius)
}

// landOnly returns a grid with the mask's land cells set and all else water.
func landOnly(mask *Mask) *Grid {
	grid := NewGrid(mask.W, mask.H)
	for i, land := range mask.Cells {
		if land {
			grid.Cells[i] = Land
		}
	}
	return grid
}

// classifyTransform promotes water cells with squared distance <= radius².
func classifyTransform(grid *Grid, mask *Mask, radius int) *Grid {
	r2 := radius * radius
	for i, d := range SquaredDistances(mask) {
		if grid.Cells[i] == Water && d <= r2 {
			grid.Cells[i] = Shallow
		}
	}
	return grid
}

// diskOffsets returns every (dx, dy) with dx²+dy² <= radius², excluding the
// origin. Stamping these around a land cell covers exactly the cells the
// window scan would promote.
func diskOffsets(radius int) [][2]int {
	offsets := make([][2]int, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if dx*dx+dy*dy <= r2 {
				offsets = append(offsets, [2]int{dx, dy})
			}
		}
	}
	return offsets
}

// classifyWindow is the reference implementation: for every water cell, scan
// the square window of half-width radius for the nearest land cell and
// promote when it is within the radius. O(W*H*radius²); kept for
// cross-checking the production paths in tests.
func classifyWindow(mask *Mask, radius int) *Grid {
	grid := landOnly(mask)
	if radius <= 0 {
		return grid
	}
	r2 := radius * radius
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			i := y*mask.W + x
			if grid.Cells[i] != Water {
				continue
			}
			best := -1
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					if !mask.At(x+dx, y+dy) {
						continue
					}
					d := dx*dx + dy*dy
					if best < 0 || d < best {
						best = d
					}
				}
			}
			if best >= 0 && best <= r2 {
				grid.Cells[i] = Shallow
			}
		}
	}
	return grid
}
