package preview

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mapforge/internal/terrain"
)

func TestDownsampleIdentity(t *testing.T) {
	g := terrain.NewGrid(4, 3)
	g.Cells[5] = terrain.Land

	out := Downsample(g, 10, 10)
	if !out.Equal(g) {
		t.Error("grid that fits must pass through unchanged")
	}

	// The result is a copy, not the same backing array.
	out.Cells[0] = terrain.Land
	if g.Cells[0] == terrain.Land {
		t.Error("Downsample must not alias the input grid")
	}
}

func TestDownsampleMajority(t *testing.T) {
	// 4x4 grid split into four 2x2 blocks. Top-left block is mostly land,
	// top-right mostly shallow, the bottom half all water.
	g := terrain.NewGrid(4, 4)
	g.Cells[0] = terrain.Land
	g.Cells[1] = terrain.Land
	g.Cells[4] = terrain.Land
	g.Cells[2] = terrain.Shallow
	g.Cells[3] = terrain.Shallow
	g.Cells[6] = terrain.Shallow

	out := Downsample(g, 2, 2)
	if out.W != 2 || out.H != 2 {
		t.Fatalf("expected 2x2, got %dx%d", out.W, out.H)
	}
	if out.At(0, 0) != terrain.Land {
		t.Errorf("expected land block, got %v", out.At(0, 0))
	}
	if out.At(1, 0) != terrain.Shallow {
		t.Errorf("expected shallow block, got %v", out.At(1, 0))
	}
	if out.At(0, 1) != terrain.Water || out.At(1, 1) != terrain.Water {
		t.Error("expected water blocks on the bottom row")
	}
}

func TestDownsampleTiesFavorLand(t *testing.T) {
	// 2x2 block with two land and two water cells collapses to land.
	g := terrain.NewGrid(2, 2)
	g.Cells[0] = terrain.Land
	g.Cells[3] = terrain.Land

	out := Downsample(g, 1, 1)
	if out.At(0, 0) != terrain.Land {
		t.Errorf("tie must favor land, got %v", out.At(0, 0))
	}
}

func TestDownsampleUnevenDimensions(t *testing.T) {
	g := terrain.NewGrid(5, 3)
	out := Downsample(g, 2, 2)
	if out.W > 2 || out.H > 2 {
		t.Errorf("expected at most 2x2, got %dx%d", out.W, out.H)
	}
	if out.W == 0 || out.H == 0 {
		t.Error("downsampled grid must not be empty")
	}
}

func TestRenderShape(t *testing.T) {
	g := terrain.NewGrid(6, 4)
	out := Render(g, 6, 4)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, "█"); n != 6 {
			t.Errorf("line %d: expected 6 blocks, got %d", i, n)
		}
	}
}
