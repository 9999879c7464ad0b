// Package config loads processing defaults from YAML. Flags given on the
// command line always win over config values.
package config

// ProcessConfig holds the tunable parameters of a processing run.
type ProcessConfig struct {
	// TileSize is the tile edge in pixels for the downstream tile converter.
	// It is recorded and passed along but never affects classification.
	TileSize int `yaml:"tile_size"`
	// LandThreshold is the brightness above which a pixel counts as land.
	LandThreshold int `yaml:"land_threshold"`
	// ShallowBuffer is the shallow-water radius around land, in tiles.
	ShallowBuffer int `yaml:"shallow_buffer"`
}

// DefaultProcessConfig returns the hardcoded fallback configuration.
func DefaultProcessConfig() ProcessConfig {
	return ProcessConfig{
		TileSize:      25,
		LandThreshold: 128,
		ShallowBuffer: 2,
	}
}
