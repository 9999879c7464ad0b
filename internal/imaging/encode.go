package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/mapforge/internal/terrain"
)

// Palette is the fixed output color per terrain type. The downstream tile
// converter matches on these exact values.
var Palette = map[terrain.Type]color.RGBA{
	terrain.Water:   {R: 0, G: 0, B: 0, A: 255},
	terrain.Shallow: {R: 0, G: 255, B: 255, A: 255},
	terrain.Land:    {R: 255, G: 255, B: 255, A: 255},
}

// Render converts a terrain grid to an RGBA image using Palette.
func Render(g *terrain.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			img.SetRGBA(x, y, Palette[g.At(x, y)])
		}
	}
	return img
}

// WritePNG encodes the image to path as PNG. The file is written to a
// temporary sibling and renamed into place, so a failed run never leaves a
// truncated output behind.
func WritePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("imaging: cannot create temp file in %s: %w", dir, err)
	}

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("imaging: cannot encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("imaging: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("imaging: cannot move output into place: %w", err)
	}
	return nil
}
