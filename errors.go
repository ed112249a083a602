package fastblur

import "errors"

// Errors returned by the blur entry points. They are wrapped with call
// details, so compare with errors.Is.
var (
	// ErrInvalidChannels is returned when the channel count is outside 1..4.
	ErrInvalidChannels = errors.New("fastblur: channel count must be between 1 and 4")

	// ErrInvalidPasses is returned when the pass count is outside 1..10.
	ErrInvalidPasses = errors.New("fastblur: pass count must be between 1 and 10")

	// ErrInvalidSigma is returned for NaN, infinite, or sigma above MaxSigma.
	ErrInvalidSigma = errors.New("fastblur: sigma must be finite and at most MaxSigma")

	// ErrInvalidRadius is returned for a negative box radius.
	ErrInvalidRadius = errors.New("fastblur: radius must not be negative")

	// ErrInvalidDimensions is returned for negative width or height.
	ErrInvalidDimensions = errors.New("fastblur: invalid dimensions")

	// ErrInvalidEdge is returned for an unknown edge policy.
	ErrInvalidEdge = errors.New("fastblur: unknown edge policy")

	// ErrBufferTooSmall is returned when a buffer holds fewer than
	// width*height*channels samples.
	ErrBufferTooSmall = errors.New("fastblur: buffer too small")

	// ErrNilBuffer is returned when GaussianBlur gets a nil buffer reference.
	ErrNilBuffer = errors.New("fastblur: nil buffer reference")

	// ErrAliasedBuffers is returned when input and output share storage.
	ErrAliasedBuffers = errors.New("fastblur: input and output buffers alias")

	// ErrNilPixmap is returned when a nil pixmap is passed.
	ErrNilPixmap = errors.New("fastblur: nil pixmap")
)
