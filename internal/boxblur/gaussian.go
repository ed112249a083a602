package boxblur

import "fmt"

// Gaussian blurs a w x h image with c channels using one box pass per
// radius along each axis:
//
//	for each radius: Horizontal(in -> out), swap
//	Flip(in -> out), swap
//	for each radius: Horizontal(in -> out) on the h x w image, swap
//	Flip(in -> out), swap
//
// Every step is followed by a swap, so after Gaussian returns *in holds the
// blurred image in the original orientation and *out holds scratch data,
// whatever the number of radii. A zero-sized image is left untouched and no
// swap happens.
func Gaussian[T Sample](run Runner, in, out *[]T, w, h, c int, radii []int, edge Edge) {
	if in == nil || out == nil {
		panic("boxblur: nil buffer reference")
	}
	checkBuffers(*in, *out, w, h, c)
	if len(radii) < 1 || len(radii) > MaxPasses {
		panic(fmt.Sprintf("boxblur: pass count %d out of range [1, %d]", len(radii), MaxPasses))
	}
	if w == 0 || h == 0 {
		return
	}

	run = runnerOrSerial(run)
	swap := func() { *in, *out = *out, *in }

	for _, r := range radii {
		Horizontal(run, *in, *out, w, h, c, r, edge)
		swap()
	}
	Flip(run, *in, *out, w, h, c)
	swap()

	for _, r := range radii {
		Horizontal(run, *in, *out, h, w, c, r, edge)
		swap()
	}
	Flip(run, *in, *out, h, w, c)
	swap()
}
