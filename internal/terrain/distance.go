package terrain

import "math"

// SquaredDistances returns, for every cell, the squared Euclidean distance to
// the nearest land cell: 0 for land itself, math.MaxInt when the mask holds
// no land at all. The result is exact, not a chamfer approximation.
//
// Two passes. The first computes, per column, the vertical distance to the
// nearest land cell in that column. The second runs a 1D squared-distance
// transform along each row over the squared vertical distances, using the
// lower envelope of parabolas (Felzenszwalb & Huttenlocher). O(W*H) total.
func SquaredDistances(mask *Mask) []int {
	w, h := mask.W, mask.H
	out := make([]int, w*h)
	if w == 0 || h == 0 {
		return out
	}

	// noLand is a finite sentinel for columns without land. It exceeds any
	// real squared distance in the grid, so it never wins the envelope, yet
	// it keeps the parabola arithmetic free of infinities.
	noLand := float64(w*w + h*h + 1)

	// Pass 1: vertical distance to land within each column, down then up.
	vert := make([]int, w*h)
	for x := 0; x < w; x++ {
		d := w + h // farther than any cell in the column
		for y := 0; y < h; y++ {
			if mask.Cells[y*w+x] {
				d = 0
			} else if d < w+h {
				d++
			}
			vert[y*w+x] = d
		}
		d = w + h
		for y := h - 1; y >= 0; y-- {
			if mask.Cells[y*w+x] {
				d = 0
			} else if d < w+h {
				d++
			}
			if d < vert[y*w+x] {
				vert[y*w+x] = d
			}
		}
	}

	// Pass 2: per-row lower envelope over f(x) = vert(x)².
	f := make([]float64, w)
	v := make([]int, w)       // parabola apex positions
	z := make([]float64, w+1) // envelope segment boundaries
	for y := 0; y < h; y++ {
		row := y * w
		hasLand := false
		for x := 0; x < w; x++ {
			vd := vert[row+x]
			if vd >= w+h {
				f[x] = noLand
			} else {
				f[x] = float64(vd * vd)
				hasLand = true
			}
		}
		if !hasLand {
			// No land anywhere in these columns means none in the mask
			// rows either; the whole row is unreachable.
			for x := 0; x < w; x++ {
				out[row+x] = math.MaxInt
			}
			continue
		}

		k := 0
		v[0] = 0
		z[0] = math.Inf(-1)
		z[1] = math.Inf(1)
		for q := 1; q < w; q++ {
			s := intersect(f, q, v[k])
			for s <= z[k] {
				k--
				s = intersect(f, q, v[k])
			}
			k++
			v[k] = q
			z[k] = s
			z[k+1] = math.Inf(1)
		}

		k = 0
		for q := 0; q < w; q++ {
			for z[k+1] < float64(q) {
				k++
			}
			dx := q - v[k]
			d := float64(dx*dx) + f[v[k]]
			if d >= noLand {
				out[row+q] = math.MaxInt
			} else {
				out[row+q] = int(d)
			}
		}
	}
	return out
}

// intersect returns the x coordinate where the parabolas rooted at q and p
// cross: ((f(q)+q²) - (f(p)+p²)) / (2q - 2p).
func intersect(f []float64, q, p int) float64 {
	return ((f[q] + float64(q*q)) - (f[p] + float64(p*p))) / float64(2*q-2*p)
}
