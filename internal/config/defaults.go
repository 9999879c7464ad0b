package config

import (
	_ "embed"
)

//go:embed defaults/mapforge.yaml
var defaultYAML []byte
