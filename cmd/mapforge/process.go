package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapforge/internal/config"
	"github.com/vovakirdan/mapforge/internal/pipeline"
	"github.com/vovakirdan/mapforge/internal/storage"
)

var (
	flagConfig        string
	flagTileSize      int
	flagLandThreshold int
	flagShallowBuffer int
	flagNoHistory     bool
)

var processCmd = &cobra.Command{
	Use:   "process <input> <output>",
	Short: "Process a map image into a three-terrain tilemap",
	Long: `Read a map image, threshold it into land and water, grow a shallow
band around all land and write the result as a lossless PNG with exactly
three colors: black (water), cyan (shallow) and white (land).

Flags not given on the command line fall back to the config file, then to
built-in defaults (tile-size 25, land-threshold 128, shallow-buffer 2).

Examples:
  mapforge process images/map.jpg assets/map_processed.png
  mapforge process map.png out.png --tile-size 16
  mapforge process map.png out.png --land-threshold 100 --shallow-buffer 4
  mapforge process map.png out.png --config ./my-map.yaml --no-history`,
	Args: cobra.ExactArgs(2),
	Run:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	processCmd.Flags().IntVar(&flagTileSize, "tile-size", 0, "Tile size in pixels for the downstream converter")
	processCmd.Flags().IntVar(&flagLandThreshold, "land-threshold", 0, "Brightness threshold for land (0-255)")
	processCmd.Flags().IntVar(&flagShallowBuffer, "shallow-buffer", 0, "Shallow water buffer radius in tiles")
	processCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run in the history database")
}

func runProcess(cmd *cobra.Command, args []string) {
	opts, err := buildOptions(cmd, args[0], args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	result, err := pipeline.Run(opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("done",
		"output", opts.OutputPath,
		"elapsed", result.Elapsed.Round(time.Millisecond))
	logger.Info("next step",
		"run", fmt.Sprintf("node tools/convert_map.js %s assets/world_map.json %d",
			opts.OutputPath, opts.TileSize))

	if flagNoHistory {
		return
	}

	// History is best-effort: a broken database must not fail the run.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	_, err = store.SaveRun(storage.RunRecord{
		InputPath:     opts.InputPath,
		OutputPath:    opts.OutputPath,
		Width:         result.Width,
		Height:        result.Height,
		TileSize:      opts.TileSize,
		LandThreshold: opts.LandThreshold,
		ShallowBuffer: opts.ShallowBuffer,
		WaterCells:    result.Distribution.Water,
		ShallowCells:  result.Distribution.Shallow,
		LandCells:     result.Distribution.Land,
		DurationMS:    result.Elapsed.Milliseconds(),
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// buildOptions merges config-file values with explicitly set flags.
func buildOptions(cmd *cobra.Command, input, output string) (pipeline.Options, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		InputPath:     input,
		OutputPath:    output,
		TileSize:      cfg.TileSize,
		LandThreshold: cfg.LandThreshold,
		ShallowBuffer: cfg.ShallowBuffer,
	}
	if cmd.Flags().Changed("tile-size") {
		opts.TileSize = flagTileSize
	}
	if cmd.Flags().Changed("land-threshold") {
		opts.LandThreshold = flagLandThreshold
	}
	if cmd.Flags().Changed("shallow-buffer") {
		opts.ShallowBuffer = flagShallowBuffer
	}
	return opts, nil
}
