// Package preview renders a classified terrain grid as colored blocks for
// the terminal, so a map can be inspected without opening the output PNG.
package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mapforge/internal/terrain"
)

// typeStyles maps terrain types to lipgloss styles matching the output
// palette: dark water, cyan shallows, white land.
var typeStyles = map[terrain.Type]lipgloss.Style{
	terrain.Water:   lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	terrain.Shallow: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	terrain.Land:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// Render draws the grid as one block character per sample, downsampled to fit
// within maxW columns and maxH rows. Grids that already fit are drawn 1:1.
func Render(g *terrain.Grid, maxW, maxH int) string {
	sampled := Downsample(g, maxW, maxH)

	var sb strings.Builder
	sb.Grow(sampled.W*sampled.H*2 + sampled.H)

	for y := 0; y < sampled.H; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells of the same type to minimize ANSI escapes.
		x := 0
		for x < sampled.W {
			start := sampled.At(x, y)

			var run strings.Builder
			for x < sampled.W && sampled.At(x, y) == start {
				run.WriteRune('█')
				x++
			}
			sb.WriteString(typeStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// Downsample reduces the grid so it fits within maxW x maxH, keeping the
// aspect ratio. Each output cell takes the most frequent type of its source
// block; ties go to the rarer terrain (land over shallow over water) so thin
// coastlines stay visible.
func Downsample(g *terrain.Grid, maxW, maxH int) *terrain.Grid {
	if maxW <= 0 {
		maxW = 1
	}
	if maxH <= 0 {
		maxH = 1
	}
	scale := 1
	for (g.W+scale-1)/scale > maxW || (g.H+scale-1)/scale > maxH {
		scale++
	}
	if scale == 1 {
		return g.Clone()
	}

	outW := (g.W + scale - 1) / scale
	outH := (g.H + scale - 1) / scale
	out := terrain.NewGrid(outW, outH)
	for oy := 0; oy < outH; oy++ {
		for ox := 0; ox < outW; ox++ {
			var counts [3]int
			for y := oy * scale; y < (oy+1)*scale && y < g.H; y++ {
				for x := ox * scale; x < (ox+1)*scale && x < g.W; x++ {
					counts[g.At(x, y)]++
				}
			}
			// Walk in precedence order so ties favor land, then shallow.
			best := terrain.Land
			for _, t := range []terrain.Type{terrain.Shallow, terrain.Water} {
				if counts[t] > counts[best] {
					best = t
				}
			}
			out.Cells[oy*outW+ox] = best
		}
	}
	return out
}
