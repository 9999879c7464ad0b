package terrain

import "image"

// Binarize thresholds an image into a land mask. Per-pixel brightness is the
// unweighted mean of the red, green and blue channels; a cell is land iff its
// brightness strictly exceeds threshold. Grayscale images decode with equal
// channels, so the mean is the gray value.
//
// Thresholds outside [0, 255] are not rejected: below 0 every cell is land,
// 255 and above none is. Returns ErrEmptyGrid for an image with no pixels.
func Binarize(img image.Image, threshold int) (*Mask, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}

	mask := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels; scale down to 8-bit first.
			// Compare the channel sum against 3*threshold so the fractional
			// part of the mean still counts (mean > t iff sum > 3t).
			sum := int(r>>8) + int(g>>8) + int(b>>8)
			if sum > 3*threshold {
				mask.Cells[y*w+x] = true
			}
		}
	}
	return mask, nil
}
