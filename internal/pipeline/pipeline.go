// Package pipeline wires the processing stages together: decode the input
// image, threshold it into a land mask, grow the shallow-water band and write
// the palettized result. Each stage is pure; the pipeline owns all I/O.
package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mapforge/internal/imaging"
	"github.com/vovakirdan/mapforge/internal/terrain"
)

// Options are the parameters of one processing run.
type Options struct {
	InputPath  string
	OutputPath string
	// TileSize is informational: it is logged and recorded for the
	// downstream tile converter but never affects classification.
	TileSize      int
	LandThreshold int
	ShallowBuffer int
}

// Result summarizes a completed run.
type Result struct {
	Width, Height int
	Distribution  terrain.Distribution
	Elapsed       time.Duration
}

// Run executes the full pipeline. The output file is only written after the
// whole grid is classified, so a failed run leaves no partial output.
func Run(opts Options, logger *log.Logger) (*Result, error) {
	start := time.Now()

	logger.Info("reading image", "path", opts.InputPath)
	img, err := imaging.Load(opts.InputPath)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	logger.Info("image decoded", "size", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()))

	logger.Info("cleaning map", "land_threshold", opts.LandThreshold)
	mask, err := terrain.Binarize(img, opts.LandThreshold)
	if err != nil {
		return nil, err
	}
	landPixels := mask.LandCount()
	totalPixels := mask.W * mask.H
	logger.Info("land detected",
		"pixels", landPixels,
		"percent", fmt.Sprintf("%.1f", float64(landPixels)/float64(totalPixels)*100))

	logger.Info("generating shallow water", "buffer", opts.ShallowBuffer)
	grid := terrain.Classify(mask, opts.ShallowBuffer)
	dist := grid.Distribution()
	logger.Info("terrain distribution",
		"water", fmt.Sprintf("%d (%.1f%%)", dist.Water, dist.Percent(terrain.Water)),
		"shallow", fmt.Sprintf("%d (%.1f%%)", dist.Shallow, dist.Percent(terrain.Shallow)),
		"land", fmt.Sprintf("%d (%.1f%%)", dist.Land, dist.Percent(terrain.Land)))

	logger.Info("saving output", "path", opts.OutputPath, "tile_size", opts.TileSize)
	if err := imaging.WritePNG(opts.OutputPath, imaging.Render(grid)); err != nil {
		return nil, err
	}

	return &Result{
		Width:        grid.W,
		Height:       grid.H,
		Distribution: dist,
		Elapsed:      time.Since(start),
	}, nil
}

// Classify runs the in-memory part of the pipeline only: decode, binarize and
// classify, without writing anything. Used by the terminal preview.
func Classify(inputPath string, landThreshold, shallowBuffer int) (*terrain.Grid, error) {
	img, err := imaging.Load(inputPath)
	if err != nil {
		return nil, err
	}
	mask, err := terrain.Binarize(img, landThreshold)
	if err != nil {
		return nil, err
	}
	return terrain.Classify(mask, shallowBuffer), nil
}
