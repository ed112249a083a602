package fastblur

import (
	"fmt"
	"math"

	"github.com/gogpu/fastblur/internal/boxblur"
)

// Sample is the set of element types a blur buffer may hold.
type Sample = boxblur.Sample

// Edge selects how the averaging window behaves at row boundaries.
type Edge = boxblur.Edge

// Edge policies.
const (
	// EdgeExtend replicates the border pixel outside the image.
	EdgeExtend = boxblur.Extend

	// EdgeCrop averages only the pixels inside the image.
	EdgeCrop = boxblur.Crop
)

// Limits on blur parameters.
const (
	MaxChannels = boxblur.MaxChannels
	MaxPasses   = boxblur.MaxPasses

	// MaxSigma is the largest sigma the blur accepts.
	MaxSigma = boxblur.MaxSigma
)

// ParseEdge parses "extend" or "crop" (case-insensitive).
func ParseEdge(s string) (Edge, error) {
	e, err := boxblur.ParseEdge(s)
	if err != nil {
		return EdgeExtend, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
	}
	return e, nil
}

// BoxRadii returns the box radii, one per pass, whose cascade approximates
// a Gaussian with standard deviation sigma. Negative sigma is treated as 0,
// which yields all-zero radii (an identity blur).
func BoxRadii(sigma float64, passes int) ([]int, error) {
	sigma, err := checkSigma(sigma)
	if err != nil {
		return nil, err
	}
	if passes < 1 || passes > MaxPasses {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPasses, passes)
	}
	return boxblur.Radii(sigma, passes), nil
}

// EffectiveSigma returns the standard deviation produced by a cascade of
// box blurs with the given radii.
func EffectiveSigma(radii []int) float64 {
	return boxblur.EffectiveSigma(radii)
}

// HorizontalBlur applies one box blur of the given radius along every row.
// in and out hold width*height*channels samples and must not overlap.
// Only WithEdge and WithParallel apply.
func HorizontalBlur[T Sample](in, out []T, width, height, channels, radius int, opts ...Option) error {
	o := buildOptions(opts)
	if err := checkBuffers(in, out, width, height, channels); err != nil {
		return err
	}
	if radius < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	if !o.edge.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidEdge, o.edge)
	}
	boxblur.Horizontal(runnerFor(o), in, out, width, height, channels, radius, o.edge)
	return nil
}

// Flip writes the transpose of in (width x height) to out, which becomes
// height x width. Applying Flip twice restores the original buffer.
// Only WithParallel applies.
func Flip[T Sample](in, out []T, width, height, channels int, opts ...Option) error {
	o := buildOptions(opts)
	if err := checkBuffers(in, out, width, height, channels); err != nil {
		return err
	}
	boxblur.Flip(runnerFor(o), in, out, width, height, channels)
	return nil
}

// GaussianBlur blurs a width x height image with the given number of
// interleaved channels so that it approximates a Gaussian of standard
// deviation sigma.
//
// The two slices referenced by in and out must each hold
// width*height*channels samples and must not alias. The blur ping-pongs
// between them and swaps the references an even number of times, so on
// success *in refers to the blurred image, backed by the same array the
// caller passed as *in, and *out holds scratch data. The contract is the
// same for every pass count. Zero-sized images are left untouched.
//
// Negative sigma is clamped to 0 (identity); NaN, infinite, or sigma above
// MaxSigma is rejected with ErrInvalidSigma.
func GaussianBlur[T Sample](in, out *[]T, width, height, channels int, sigma float64, opts ...Option) error {
	o := buildOptions(opts)
	if in == nil || out == nil {
		return ErrNilBuffer
	}
	if err := checkBuffers(*in, *out, width, height, channels); err != nil {
		return err
	}
	if !o.edge.IsValid() {
		return fmt.Errorf("%w: %v", ErrInvalidEdge, o.edge)
	}
	radii, err := BoxRadii(sigma, o.passes)
	if err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	log := Logger()
	log.Debug("fastblur: gaussian blur",
		"width", width, "height", height, "channels", channels,
		"sigma", sigma, "passes", o.passes, "radii", radii,
		"edge", o.edge.String(), "parallel", o.parallel)

	boxblur.Gaussian(runnerFor(o), in, out, width, height, channels, radii, o.edge)
	return nil
}

// checkSigma rejects non-finite or oversized sigma and clamps negative
// sigma to 0.
func checkSigma(sigma float64) (float64, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma > MaxSigma {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidSigma, sigma)
	}
	if sigma < 0 {
		Logger().Warn("fastblur: negative sigma clamped to 0", "sigma", sigma)
		return 0, nil
	}
	return sigma, nil
}

// checkBuffers validates a buffer pair for a width x height x channels image.
func checkBuffers[T Sample](in, out []T, width, height, channels int) error {
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height * channels
	if len(in) < n || len(out) < n {
		return fmt.Errorf("%w: have %d and %d samples, need %d", ErrBufferTooSmall, len(in), len(out), n)
	}
	if boxblur.Overlap(in, out, n) {
		return ErrAliasedBuffers
	}
	return nil
}
