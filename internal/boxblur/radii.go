package boxblur

import (
	"fmt"
	"math"
)

// Radii returns the box radii whose cascade approximates a Gaussian of
// standard deviation sigma using the given number of passes.
//
// The ideal box width wi = sqrt(12*sigma^2/n + 1) is bracketed by the odd
// widths wl <= wi < wu = wl+2. The first m passes use wl and the rest wu,
// where m is chosen so the summed box variances match sigma^2.
// Based on http://blog.ivank.net/fastest-gaussian-blur.html.
//
// Non-positive sigma yields all-zero radii. Radii panics if passes is
// outside [1, MaxPasses] or sigma is above MaxSigma.
func Radii(sigma float64, passes int) []int {
	if passes < 1 || passes > MaxPasses {
		panic(fmt.Sprintf("boxblur: pass count %d out of range [1, %d]", passes, MaxPasses))
	}
	if sigma > MaxSigma {
		panic(fmt.Sprintf("boxblur: sigma %g above %g", sigma, MaxSigma))
	}
	if !(sigma > 0) {
		sigma = 0
	}

	n := float64(passes)
	wi := math.Sqrt(12*sigma*sigma/n + 1)
	wl := int(math.Floor(wi))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	fwl := float64(wl)
	mi := (12*sigma*sigma - n*fwl*fwl - 4*n*fwl - 3*n) / (-4*fwl - 4)
	// Round half up by truncation.
	m := int(mi + 0.5)

	radii := make([]int, passes)
	for i := range radii {
		width := wu
		if i < m {
			width = wl
		}
		radii[i] = max((width-1)/2, 0)
	}
	return radii
}

// EffectiveSigma returns the standard deviation actually produced by a
// cascade of box blurs with the given radii. A box of width w = 2r+1 has
// variance (w^2-1)/12 and the variances of a cascade add up.
func EffectiveSigma(radii []int) float64 {
	var variance float64
	for _, r := range radii {
		w := float64(2*r + 1)
		variance += (w*w - 1) / 12
	}
	return math.Sqrt(variance)
}
