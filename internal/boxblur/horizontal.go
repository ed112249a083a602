package boxblur

import "fmt"

// Horizontal applies one box blur of radius r along every row of in and
// writes the result to out. Both buffers hold w*h*c interleaved samples and
// must not alias. Rows are independent, so run may process them in parallel;
// a nil run processes them serially.
//
// Sums are accumulated in float64 and stored back with a plain conversion,
// so integer samples are truncated toward zero.
func Horizontal[T Sample](run Runner, in, out []T, w, h, c, r int, edge Edge) {
	checkBuffers(in, out, w, h, c)
	if r < 0 {
		panic(fmt.Sprintf("boxblur: negative radius %d", r))
	}
	if w == 0 || h == 0 {
		return
	}

	stride := w * c
	runnerOrSerial(run).Run(h, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := y * stride
			blurRow(in[row:row+stride], out[row:row+stride], w, c, r, edge)
		}
	})
}

// blurRow blurs a single row of w pixels with c channels.
func blurRow[T Sample](in, out []T, w, c, r int, edge Edge) {
	if r == 0 {
		copy(out, in)
		return
	}
	if 2*r+1 > w {
		blurRowWide(in, out, w, c, r, edge)
		return
	}

	var fv, lv, val [MaxChannels]float64
	win := float64(2*r + 1)
	extend := edge == Extend

	if extend {
		for ch := 0; ch < c; ch++ {
			fv[ch] = float64(in[ch])
			lv[ch] = float64(in[(w-1)*c+ch])
			val[ch] = float64(r+1) * fv[ch]
		}
	}
	for j := 0; j < r; j++ {
		for ch := 0; ch < c; ch++ {
			val[ch] += float64(in[j*c+ch])
		}
	}

	ti, li, ri := 0, 0, r*c

	// Left ramp: the window reaches past the first pixel.
	for j := 0; j <= r; j++ {
		den := win
		if !extend {
			den = float64(r + j + 1)
		}
		for ch := 0; ch < c; ch++ {
			val[ch] += float64(in[ri+ch]) - fv[ch]
			out[ti+ch] = T(val[ch] / den)
		}
		ri += c
		ti += c
	}

	// Interior: the window is complete.
	for j := r + 1; j < w-r; j++ {
		for ch := 0; ch < c; ch++ {
			val[ch] += float64(in[ri+ch]) - float64(in[li+ch])
			out[ti+ch] = T(val[ch] / win)
		}
		ri += c
		li += c
		ti += c
	}

	// Right ramp: the window reaches past the last pixel.
	for j := w - r; j < w; j++ {
		den := win
		if !extend {
			den = float64(r + w - j)
		}
		for ch := 0; ch < c; ch++ {
			val[ch] += lv[ch] - float64(in[li+ch])
			out[ti+ch] = T(val[ch] / den)
		}
		li += c
		ti += c
	}
}

// blurRowWide handles windows wider than the row. Out-of-range indices are
// clamped (Extend) or skipped (Crop), and the running sum slides in O(w).
func blurRowWide[T Sample](in, out []T, w, c, r int, edge Edge) {
	var val [MaxChannels]float64
	last := w - 1

	if edge == Extend {
		// Window [-r, r]: r+1 copies of the first pixel, pixels 1..min(r, last),
		// and r-last copies of the last pixel when r reaches past it.
		tail := max(r-last, 0)
		for ch := 0; ch < c; ch++ {
			val[ch] = float64(r+1)*float64(in[ch]) + float64(tail)*float64(in[last*c+ch])
		}
		for k := 1; k <= min(r, last); k++ {
			for ch := 0; ch < c; ch++ {
				val[ch] += float64(in[k*c+ch])
			}
		}

		win := float64(2*r + 1)
		for j := 0; j < w; j++ {
			for ch := 0; ch < c; ch++ {
				out[j*c+ch] = T(val[ch] / win)
			}
			enter := min(j+r+1, last)
			leave := max(j-r, 0)
			for ch := 0; ch < c; ch++ {
				val[ch] += float64(in[enter*c+ch]) - float64(in[leave*c+ch])
			}
		}
		return
	}

	for k := 0; k <= min(r, last); k++ {
		for ch := 0; ch < c; ch++ {
			val[ch] += float64(in[k*c+ch])
		}
	}
	for j := 0; j < w; j++ {
		den := float64(min(j+r, last) - max(j-r, 0) + 1)
		for ch := 0; ch < c; ch++ {
			out[j*c+ch] = T(val[ch] / den)
		}
		if enter := j + r + 1; enter <= last {
			for ch := 0; ch < c; ch++ {
				val[ch] += float64(in[enter*c+ch])
			}
		}
		if leave := j - r; leave >= 0 {
			for ch := 0; ch < c; ch++ {
				val[ch] -= float64(in[leave*c+ch])
			}
		}
	}
}
