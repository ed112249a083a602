package boxblur

// FlipBlockSamples bounds the number of samples in one tile row.
const FlipBlockSamples = 256

// Flip writes the transpose of in (w x h pixels, c channels) to out, which
// becomes h x w pixels. The copy walks square tiles of FlipBlockSamples/c
// pixels so reads and writes both stay within a few cache lines.
// Column strips of tiles write disjoint output rows, so run may process
// them in parallel.
func Flip[T Sample](run Runner, in, out []T, w, h, c int) {
	checkBuffers(in, out, w, h, c)
	if w == 0 || h == 0 {
		return
	}

	block := FlipBlockSamples / c
	strips := (w + block - 1) / block

	runnerOrSerial(run).Run(strips, func(lo, hi int) {
		for s := lo; s < hi; s++ {
			x0 := s * block
			x1 := min(w, x0+block)
			for y0 := 0; y0 < h; y0 += block {
				y1 := min(h, y0+block)
				flipTile(in, out, w, h, c, x0, x1, y0, y1)
			}
		}
	})
}

// flipTile transposes the tile [x0, x1) x [y0, y1).
func flipTile[T Sample](in, out []T, w, h, c, x0, x1, y0, y1 int) {
	rowStride := w * c
	for x := x0; x < x1; x++ {
		p := (y0*w + x) * c
		q := (x*h + y0) * c
		for y := y0; y < y1; y++ {
			copy(out[q:q+c], in[p:p+c])
			p += rowStride
			q += c
		}
	}
}
