// Package image provides pixel formats, codecs and scratch buffers for fastblur.
//
// Pixels are stored as interleaved 8-bit channels without padding, which is
// the layout the blur kernels operate on.
package image

import (
	"fmt"
	"strings"
)

// Format represents an interleaved 8-bit pixel layout.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 channel).
	FormatGray8 Format = iota

	// FormatGrayAlpha8 is grayscale plus straight alpha (2 channels).
	FormatGrayAlpha8

	// FormatRGB8 is 24-bit RGB without alpha (3 channels).
	FormatRGB8

	// FormatRGBA8 is 32-bit RGBA with straight alpha (4 channels).
	// This is the default format.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Channels is the number of interleaved channels, which is also the
	// number of bytes per pixel.
	Channels int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// AlphaIndex is the channel index of alpha, or -1.
	AlphaIndex int

	// IsGrayscale indicates if this is a grayscale format.
	IsGrayscale bool

	// Name is the lowercase name used in configuration files.
	Name string
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray8:      {Channels: 1, AlphaIndex: -1, IsGrayscale: true, Name: "gray"},
	FormatGrayAlpha8: {Channels: 2, HasAlpha: true, AlphaIndex: 1, IsGrayscale: true, Name: "gray-alpha"},
	FormatRGB8:       {Channels: 3, AlphaIndex: -1, Name: "rgb"},
	FormatRGBA8:      {Channels: 4, HasAlpha: true, AlphaIndex: 3, Name: "rgba"},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{AlphaIndex: -1}
	}
	return formatInfoTable[f]
}

// Channels returns the number of channels (and bytes) per pixel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// AlphaIndex returns the channel index of alpha, or -1 without alpha.
func (f Format) AlphaIndex() int {
	return f.Info().AlphaIndex
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().IsGrayscale
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the lowercase name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// FormatForChannels returns the format with the given channel count.
func FormatForChannels(channels int) (Format, error) {
	for f := Format(0); f < formatCount; f++ {
		if f.Channels() == channels {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %d channels", ErrInvalidFormat, channels)
}

// ParseFormat parses a format name such as "rgba" or "gray".
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f := Format(0); f < formatCount; f++ {
		if f.Info().Name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}
