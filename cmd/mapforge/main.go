// mapforge converts raster map images into clean three-terrain tilemaps
// (water / shallow / land) for the game map pipeline.
//
// Usage:
//
//	mapforge process <input> <output>  - Process a map image
//	mapforge preview <input>           - Preview the classification in the terminal
//	mapforge history                   - Show recent processing runs
//
// Global flags:
//
//	--db <path>   - Run-history database path (default: ~/.mapforge/history.db)
//	--quiet       - Only log warnings and errors
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagQuiet  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mapforge",
	Short: "Process raster maps into water/shallow/land tilemaps",
	Long: `mapforge turns a raster map image into a clean tilemap with exactly
three colors: black water, cyan shallow water and white land. Shallow
water is grown as a buffer of configurable radius around all land.

The output PNG is the input of the tile-JSON converter:
  node tools/convert_map.js <output> assets/world_map.json <tile-size>

Examples:
  mapforge process images/map.jpg assets/map_processed.png
  mapforge process map.png out.png --land-threshold 100 --shallow-buffer 4
  mapforge preview images/map.jpg
  mapforge history --limit 5`,
}

// newLogger builds the stderr logger shared by all subcommands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "mapforge",
	})
	if flagQuiet {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mapforge/history.db", "Path to run-history database")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Only log warnings and errors")

	// Add subcommands
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(historyCmd)
}
