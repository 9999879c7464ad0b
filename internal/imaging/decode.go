// Package imaging is the image I/O glue around the terrain core: decoding
// input rasters and encoding the classified grid to the fixed three-color
// palette the downstream tile converter expects.
package imaging

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
)

// Load opens and decodes a raster image. The format is sniffed from the file
// contents, not the extension.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("imaging: cannot decode %s: %w", path, err)
	}
	return img, nil
}
