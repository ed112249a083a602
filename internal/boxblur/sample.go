package boxblur

import (
	"fmt"
	"strings"
	"unsafe"
)

// Sample is the set of element types a blur buffer may hold.
// Sums are always accumulated in float64.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~int8 | ~int16 | ~int32 | ~float32 | ~float64
}

// Edge selects how the averaging window behaves at row boundaries.
type Edge uint8

const (
	// Extend replicates the first and last sample of each row.
	Extend Edge = iota

	// Crop truncates the window at the row boundary and divides by the
	// number of samples actually present.
	Crop
)

// String returns the lowercase name of the edge policy.
func (e Edge) String() string {
	switch e {
	case Extend:
		return "extend"
	case Crop:
		return "crop"
	default:
		return fmt.Sprintf("Edge(%d)", uint8(e))
	}
}

// IsValid reports whether e is a known edge policy.
func (e Edge) IsValid() bool {
	return e == Extend || e == Crop
}

// ParseEdge parses "extend" or "crop" (case-insensitive).
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extend", "":
		return Extend, nil
	case "crop":
		return Crop, nil
	default:
		return Extend, fmt.Errorf("boxblur: unknown edge policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	if !e.IsValid() {
		return nil, fmt.Errorf("boxblur: invalid edge policy %d", uint8(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	v, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MaxChannels is the largest supported channel count.
const MaxChannels = 4

// MaxPasses is the largest supported number of box passes per axis.
const MaxPasses = 10

// MaxSigma is the largest accepted sigma. Box widths derived from it still
// fit in an int with room for the 2r+1 window arithmetic.
const MaxSigma = 1e15

// checkBuffers panics if the buffer pair cannot hold w*h*c samples
// or if their first w*h*c samples overlap in memory.
func checkBuffers[T Sample](in, out []T, w, h, c int) {
	if c < 1 || c > MaxChannels {
		panic(fmt.Sprintf("boxblur: channel count %d out of range [1, %d]", c, MaxChannels))
	}
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("boxblur: negative dimensions %dx%d", w, h))
	}
	n := w * h * c
	if len(in) < n || len(out) < n {
		panic(fmt.Sprintf("boxblur: buffers hold %d and %d samples, need %d", len(in), len(out), n))
	}
	if Overlap(in, out, n) {
		panic("boxblur: input and output buffers alias")
	}
}

// Overlap reports whether the first n samples of a and b share memory.
// Both slices must hold at least n samples.
func Overlap[T Sample](a, b []T, n int) bool {
	if n <= 0 {
		return false
	}
	size := uintptr(n) * unsafe.Sizeof(a[0])
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+size && b0 < a0+size
}
