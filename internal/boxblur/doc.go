// Package boxblur implements a Gaussian blur approximated by a cascade of
// box (moving-average) blurs.
//
// The algorithm works on caller-owned, row-major, channel-interleaved sample
// buffers with 1 to 4 channels:
//   - Radii converts a standard deviation and a pass count into box radii
//   - Horizontal applies one moving-average pass along every row
//   - Flip transposes a buffer in cache-sized tiles
//   - Gaussian runs passes, flip, passes, flip to blur both axes
//
// Every pass costs O(width*height*channels) regardless of the radius.
//
// Functions in this package treat invalid arguments (channel count outside
// 1..4, undersized or aliased buffers, negative radii) as programming errors
// and panic. The fastblur package validates user input before calling here.
package boxblur
