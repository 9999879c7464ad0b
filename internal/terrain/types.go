// Package terrain implements the terrain classification core: thresholding a
// raster image into a land mask and growing a shallow-water band of a fixed
// Euclidean radius around the land. It contains no I/O so the classification
// logic stays pure and testable.
package terrain

import "errors"

// ErrEmptyGrid indicates an input with zero width or height.
var ErrEmptyGrid = errors.New("terrain: grid must have at least one row and one column")

// Type is the classification of a single map cell.
type Type uint8

// Terrain types, in promotion order: water may become shallow, land is fixed.
const (
	Water Type = iota
	Shallow
	Land
)

// String returns a human-readable name for logging and stats output.
func (t Type) String() string {
	switch t {
	case Water:
		return "water"
	case Shallow:
		return "shallow"
	case Land:
		return "land"
	default:
		return "unknown"
	}
}
