package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mapforge/internal/config"
	"github.com/vovakirdan/mapforge/internal/pipeline"
	"github.com/vovakirdan/mapforge/internal/preview"
	"github.com/vovakirdan/mapforge/internal/terrain"
)

var (
	flagPreviewConfig    string
	flagPreviewThreshold int
	flagPreviewBuffer    int
	flagPreviewWidth     int
)

var previewCmd = &cobra.Command{
	Use:   "preview <input>",
	Short: "Preview the terrain classification in the terminal",
	Long: `Classify a map image in memory and draw it as colored blocks,
downsampled to fit the terminal. Nothing is written to disk.

Examples:
  mapforge preview images/map.jpg
  mapforge preview map.png --land-threshold 100 --shallow-buffer 4
  mapforge preview map.png --width 60`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagPreviewConfig, "config", "", "Path to custom config YAML")
	previewCmd.Flags().IntVar(&flagPreviewThreshold, "land-threshold", 0, "Brightness threshold for land (0-255)")
	previewCmd.Flags().IntVar(&flagPreviewBuffer, "shallow-buffer", 0, "Shallow water buffer radius in tiles")
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 0, "Preview width in columns (default: terminal width)")
}

func runPreview(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagPreviewConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	threshold := cfg.LandThreshold
	if cmd.Flags().Changed("land-threshold") {
		threshold = flagPreviewThreshold
	}
	buffer := cfg.ShallowBuffer
	if cmd.Flags().Changed("shallow-buffer") {
		buffer = flagPreviewBuffer
	}

	grid, err := pipeline.Classify(args[0], threshold, buffer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Size the preview to the terminal, leaving a row for the stats line.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if flagPreviewWidth > 0 {
		width = flagPreviewWidth
	}

	fmt.Println(preview.Render(grid, width, height-2))

	d := grid.Distribution()
	fmt.Printf("%dx%d  water %.1f%%  shallow %.1f%%  land %.1f%%\n",
		grid.W, grid.H,
		d.Percent(terrain.Water), d.Percent(terrain.Shallow), d.Percent(terrain.Land))
}
