package fastblur

import (
	"fmt"
	"math"
)

// ShadowOptions configures DropShadow.
type ShadowOptions struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX int

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY int

	// Sigma is the standard deviation of the shadow blur.
	Sigma float64

	// Color is the shadow color. Its alpha scales the shadow opacity.
	Color RGBA

	// Passes is the number of box passes; 0 means DefaultPasses.
	Passes int

	// Parallel spreads the blur across the shared worker pool.
	Parallel bool
}

// DefaultShadowOptions returns a soft black shadow at 50% opacity,
// offset down and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		OffsetX: 3,
		OffsetY: 3,
		Sigma:   4,
		Color:   RGBA2(0, 0, 0, 0.5),
	}
}

// ShadowLayout describes where DropShadow places the source and its shadow
// on the padded output canvas.
type ShadowLayout struct {
	// Width and Height are the output canvas size.
	Width, Height int

	// SourceX and SourceY are the top-left corner of the source image.
	SourceX, SourceY int

	// ShadowX and ShadowY are the top-left corner of the unblurred shadow.
	ShadowX, ShadowY int

	// Pad is the margin reserved for the blur on every side.
	Pad int
}

// ShadowBounds computes the canvas layout for a width x height source.
// The canvas grows by ceil(3*sigma) on every side plus the offset, so the
// blurred shadow is never clipped.
func ShadowBounds(width, height int, opts ShadowOptions) ShadowLayout {
	pad := 0
	if opts.Sigma > 0 {
		pad = int(math.Ceil(3 * opts.Sigma))
	}

	srcX := pad + max(0, -opts.OffsetX)
	srcY := pad + max(0, -opts.OffsetY)

	return ShadowLayout{
		Width:   width + 2*pad + absInt(opts.OffsetX),
		Height:  height + 2*pad + absInt(opts.OffsetY),
		SourceX: srcX,
		SourceY: srcY,
		ShadowX: srcX + opts.OffsetX,
		ShadowY: srcY + opts.OffsetY,
		Pad:     pad,
	}
}

// DropShadow renders src over a blurred, tinted copy of its alpha channel.
// The algorithm:
//  1. Convert src to RGBA and lay out a padded canvas
//  2. Copy the source alpha to the shadow position
//  3. Blur the alpha plane
//  4. Tint it with the shadow color
//  5. Composite the source over the shadow
//
// The returned pixmap is RGBA8 and sized by ShadowBounds.
func DropShadow(src *Pixmap, opts ShadowOptions) (*Pixmap, error) {
	if src == nil {
		return nil, ErrNilPixmap
	}
	sigma, err := checkSigma(opts.Sigma)
	if err != nil {
		return nil, err
	}
	opts.Sigma = sigma
	passes := opts.Passes
	if passes == 0 {
		passes = DefaultPasses
	}

	rgba := src
	if src.Format() != FormatRGBA8 {
		if rgba, err = src.Convert(FormatRGBA8); err != nil {
			return nil, fmt.Errorf("fastblur: drop shadow: %w", err)
		}
	}

	layout := ShadowBounds(rgba.Width(), rgba.Height(), opts)
	dst, err := NewPixmap(layout.Width, layout.Height, FormatRGBA8)
	if err != nil {
		return nil, err
	}
	if layout.Width == 0 || layout.Height == 0 {
		return dst, nil
	}

	n := layout.Width * layout.Height
	alpha := make([]float32, n)
	scratch := make([]float32, n)
	extractAlpha(rgba, alpha, layout)

	if err := GaussianBlur(&alpha, &scratch, layout.Width, layout.Height, 1, sigma,
		WithPasses(passes), WithEdge(EdgeExtend), WithParallel(opts.Parallel)); err != nil {
		return nil, err
	}

	Logger().Debug("fastblur: drop shadow",
		"width", layout.Width, "height", layout.Height,
		"offset_x", opts.OffsetX, "offset_y", opts.OffsetY, "sigma", sigma)

	compositeShadow(rgba, dst, alpha, layout, opts.Color)
	return dst, nil
}

// extractAlpha writes the source alpha, normalized to [0, 1], into the
// canvas-sized plane at the shadow position.
func extractAlpha(src *Pixmap, alpha []float32, layout ShadowLayout) {
	w, h := src.Width(), src.Height()
	data := src.Data()
	for y := 0; y < h; y++ {
		row := (layout.ShadowY+y)*layout.Width + layout.ShadowX
		for x := 0; x < w; x++ {
			alpha[row+x] = float32(data[(y*w+x)*4+3]) / 255
		}
	}
}

// compositeShadow tints the blurred alpha and draws src over it.
// Colors are straight alpha on input and output.
func compositeShadow(src, dst *Pixmap, alpha []float32, layout ShadowLayout, shadow RGBA) {
	w, h := src.Width(), src.Height()
	srcData := src.Data()
	dstData := dst.Data()

	for y := 0; y < layout.Height; y++ {
		for x := 0; x < layout.Width; x++ {
			i := y*layout.Width + x
			sa := shadow.A * clamp01(float64(alpha[i]))

			// Shadow alone, straight alpha.
			outR, outG, outB, outA := shadow.R, shadow.G, shadow.B, sa

			sx, sy := x-layout.SourceX, y-layout.SourceY
			if sx >= 0 && sx < w && sy >= 0 && sy < h {
				p := srcData[(sy*w+sx)*4 : (sy*w+sx)*4+4]
				fa := float64(p[3]) / 255
				a := fa + sa*(1-fa)
				if a > 0 {
					outR = (float64(p[0])/255*fa + shadow.R*sa*(1-fa)) / a
					outG = (float64(p[1])/255*fa + shadow.G*sa*(1-fa)) / a
					outB = (float64(p[2])/255*fa + shadow.B*sa*(1-fa)) / a
				}
				outA = a
			}

			q := dstData[i*4 : i*4+4]
			if outA <= 0 {
				q[0], q[1], q[2], q[3] = 0, 0, 0, 0
				continue
			}
			q[0], q[1], q[2], q[3] = to8(outR), to8(outG), to8(outB), to8(outA)
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
