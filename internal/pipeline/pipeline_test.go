package pipeline

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mapforge/internal/terrain"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// writeTestMap writes a 5x5 grayscale PNG with a single bright pixel in the
// center.
func writeTestMap(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 5, 5))
	img.SetGray(2, 2, color.Gray{Y: 255})

	path := filepath.Join(t.TempDir(), "map.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	input := writeTestMap(t)
	output := filepath.Join(t.TempDir(), "out.png")

	res, err := Run(Options{
		InputPath:     input,
		OutputPath:    output,
		TileSize:      25,
		LandThreshold: 128,
		ShallowBuffer: 2,
	}, quietLogger())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Width != 5 || res.Height != 5 {
		t.Errorf("expected 5x5, got %dx%d", res.Width, res.Height)
	}
	want := terrain.Distribution{Water: 4, Shallow: 20, Land: 1}
	if res.Distribution != want {
		t.Errorf("expected distribution %+v, got %+v", want, res.Distribution)
	}

	// Output exists and holds only palette colors.
	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 5 {
		t.Errorf("output dimensions changed: %v", img.Bounds())
	}

	seen := map[color.RGBA]bool{}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			seen[color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}] = true
		}
	}
	for c := range seen {
		switch c {
		case color.RGBA{0, 0, 0, 255},
			color.RGBA{0, 255, 255, 255},
			color.RGBA{255, 255, 255, 255}:
		default:
			t.Errorf("unexpected output color %v", c)
		}
	}
}

func TestRunMissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.png")
	_, err := Run(Options{
		InputPath:     filepath.Join(t.TempDir(), "missing.png"),
		OutputPath:    output,
		LandThreshold: 128,
		ShallowBuffer: 2,
	}, quietLogger())
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("no output file should exist after a failed run")
	}
}

func TestClassifyInMemory(t *testing.T) {
	grid, err := Classify(writeTestMap(t), 128, 2)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if grid.At(2, 2) != terrain.Land {
		t.Error("expected land at the center")
	}
	if grid.At(0, 0) != terrain.Water {
		t.Error("expected water at the corner")
	}
	if grid.At(1, 1) != terrain.Shallow {
		t.Error("expected shallow next to land")
	}
}
