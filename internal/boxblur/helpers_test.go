package boxblur

import (
	"math"
	"sync"
)

// Test helper functions shared across boxblur tests.

// naiveRow computes the moving average of one row directly from the
// definition, without a sliding window.
func naiveRow(in []float64, w, c, r int, edge Edge) []float64 {
	out := make([]float64, w*c)
	for j := 0; j < w; j++ {
		for ch := 0; ch < c; ch++ {
			var sum float64
			var count int
			for k := j - r; k <= j+r; k++ {
				idx := k
				if idx < 0 || idx >= w {
					if edge == Crop {
						continue
					}
					idx = min(max(idx, 0), w-1)
				}
				sum += in[idx*c+ch]
				count++
			}
			out[j*c+ch] = sum / float64(count)
		}
	}
	return out
}

// naiveFlip transposes element by element.
func naiveFlip[T Sample](in []T, w, h, c int) []T {
	out := make([]T, len(in))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for ch := 0; ch < c; ch++ {
				out[(x*h+y)*c+ch] = in[(y*w+x)*c+ch]
			}
		}
	}
	return out
}

// patternBuffer fills w*h*c samples with a deterministic, non-symmetric pattern.
func patternBuffer(w, h, c int) []float64 {
	buf := make([]float64, w*h*c)
	for i := range buf {
		buf[i] = float64((i*37 + i/7*11) % 251)
	}
	return buf
}

// chunkRunner splits the range into fixed-size chunks on separate goroutines.
type chunkRunner struct {
	chunk int
}

func (r chunkRunner) Run(n int, fn func(lo, hi int)) {
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += r.chunk {
		hi := min(lo+r.chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(lo, hi)
		}()
	}
	wg.Wait()
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func sum(buf []float64) float64 {
	var s float64
	for _, v := range buf {
		s += v
	}
	return s
}
