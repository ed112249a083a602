// Package fastblur provides a fast Gaussian blur for interleaved pixel buffers.
//
// # Overview
//
// fastblur approximates a Gaussian blur with a cascade of box blurs. Each
// box pass is a sliding-window average whose cost does not depend on the
// radius, so a blur with sigma 50 costs the same as one with sigma 2.
// Passes run along rows; the image is transposed between the horizontal and
// vertical halves so both halves walk memory sequentially.
//
// # Quick Start
//
//	import "github.com/gogpu/fastblur"
//
//	// Blur a caller-owned RGBA buffer. The result ends up in in.
//	in := make([]uint8, w*h*4)
//	out := make([]uint8, w*h*4)
//	err := fastblur.GaussianBlur(&in, &out, w, h, 4, 6.0)
//
//	// Or work with images directly.
//	pm, _ := fastblur.LoadPixmap("photo.png", fastblur.FormatRGBA8)
//	_ = pm.Blur(6.0, fastblur.WithPasses(4))
//	_ = pm.SavePNG("photo-blurred.png")
//
// # Buffers
//
// Buffers are row-major with 1 to 4 interleaved channels. Any numeric sample
// type works: uint8 images, float32 masks, int16 signed data. Sums are kept in
// float64 and converted back with truncation toward zero.
//
// # Edges
//
// [EdgeExtend] repeats the border pixel outside the image. [EdgeCrop]
// averages only the pixels that exist, so borders are not darkened or
// lightened by padding.
//
// # Drop shadows
//
// [DropShadow] blurs the alpha channel of a pixmap, tints it and composites
// the original on top, returning a padded image that holds the whole shadow.
package fastblur

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
