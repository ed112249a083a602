package boxblur

import (
	"slices"
	"testing"
)

func TestFlipMatchesNaive(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1}, {1, 7}, {7, 1}, {3, 5}, {64, 3}, {65, 130}, {200, 67},
	}

	for c := 1; c <= MaxChannels; c++ {
		for _, s := range sizes {
			in := make([]uint16, s.w*s.h*c)
			for i := range in {
				in[i] = uint16(i)
			}
			out := make([]uint16, len(in))

			Flip(nil, in, out, s.w, s.h, c)

			want := naiveFlip(in, s.w, s.h, c)
			if !slices.Equal(out, want) {
				t.Errorf("Flip %dx%d c=%d differs from naive transpose", s.w, s.h, c)
			}
		}
	}
}

func TestFlipInvolution(t *testing.T) {
	w, h, c := 97, 41, 3
	in := patternBuffer(w, h, c)
	mid := make([]float64, len(in))
	back := make([]float64, len(in))

	Flip(nil, in, mid, w, h, c)
	Flip(nil, mid, back, h, w, c)

	if !slices.Equal(back, in) {
		t.Error("flipping twice did not restore the original buffer")
	}
}

func TestFlipPixelPlacement(t *testing.T) {
	// 3x2 RG image: pixel (x, y) holds {x, y}.
	w, h, c := 3, 2, 2
	in := make([]int16, w*h*c)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in[(y*w+x)*c] = int16(x)
			in[(y*w+x)*c+1] = int16(y)
		}
	}
	out := make([]int16, len(in))
	Flip(nil, in, out, w, h, c)

	// out is 2x3: pixel (y, x) holds {x, y}.
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			i := (x*h + y) * c
			if out[i] != int16(x) || out[i+1] != int16(y) {
				t.Errorf("out pixel (%d,%d) = {%d,%d}, want {%d,%d}", y, x, out[i], out[i+1], x, y)
			}
		}
	}
}

func TestFlipParallelMatchesSerial(t *testing.T) {
	w, h, c := 300, 90, 4
	in := patternBuffer(w, h, c)
	serial := make([]float64, len(in))
	parallel := make([]float64, len(in))

	Flip(nil, in, serial, w, h, c)
	Flip(chunkRunner{chunk: 1}, in, parallel, w, h, c)

	if !slices.Equal(serial, parallel) {
		t.Error("parallel flip differs from serial flip")
	}
}

func TestFlipZeroSize(t *testing.T) {
	Flip[float32](nil, nil, nil, 0, 0, 4)
	Flip[float32](nil, nil, nil, 5, 0, 1)
}
