package fastblur

import (
	"fmt"
	"image"
	"image/color"

	intImage "github.com/gogpu/fastblur/internal/image"
)

// Format is the pixel layout of a Pixmap.
type Format = intImage.Format

// Pixel formats.
const (
	FormatGray8      = intImage.FormatGray8
	FormatGrayAlpha8 = intImage.FormatGrayAlpha8
	FormatRGB8       = intImage.FormatRGB8
	FormatRGBA8      = intImage.FormatRGBA8
)

// ParseFormat parses a format name: "gray", "gray-alpha", "rgb" or "rgba".
func ParseFormat(s string) (Format, error) {
	return intImage.ParseFormat(s)
}

// Limits on the scratch memory Pixmap.Blur keeps between calls.
const (
	scratchBuffers = 4
	scratchMaxLen  = 64 << 20
)

// scratchPool recycles the second buffer Pixmap.Blur needs.
var scratchPool = intImage.NewPool[uint8](scratchBuffers, scratchMaxLen)

// Pixmap represents a rectangular 8-bit pixel buffer with 1 to 4
// interleaved channels and no row padding.
type Pixmap struct {
	width  int
	height int
	format Format
	data   []uint8
}

// NewPixmap creates a zeroed pixmap with the given dimensions and format.
func NewPixmap(width, height int, format Format) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: format %d", ErrInvalidChannels, format)
	}
	return &Pixmap{
		width:  width,
		height: height,
		format: format,
		data:   make([]uint8, format.ImageBytes(width, height)),
	}, nil
}

// NewPixmapFromData wraps existing samples without copying.
// data must hold at least width*height*channels bytes.
func NewPixmapFromData(data []uint8, width, height int, format Format) (*Pixmap, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: format %d", ErrInvalidChannels, format)
	}
	n := format.ImageBytes(width, height)
	if len(data) < n {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(data), n)
	}
	return &Pixmap{width: width, height: height, format: format, data: data[:n]}, nil
}

// FromImage converts any image to a pixmap of the given format.
func FromImage(img image.Image, format Format) (*Pixmap, error) {
	data, w, h, err := intImage.Interleave(img, format)
	if err != nil {
		return nil, err
	}
	return &Pixmap{width: w, height: h, format: format, data: data}, nil
}

// LoadPixmap decodes an image file into a pixmap of the given format.
func LoadPixmap(path string, format Format) (*Pixmap, error) {
	img, err := intImage.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img, format)
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Format returns the pixel format.
func (p *Pixmap) Format() Format {
	return p.format
}

// Channels returns the number of interleaved channels.
func (p *Pixmap) Channels() int {
	return p.format.Channels()
}

// Data returns the raw interleaved samples.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, format: p.format, data: data}
}

// Convert returns a copy of the pixmap in another format.
func (p *Pixmap) Convert(format Format) (*Pixmap, error) {
	if format == p.format {
		return p.Clone(), nil
	}
	img, err := p.ToImage()
	if err != nil {
		return nil, err
	}
	return FromImage(img, format)
}

// SetPixel sets the color of a single pixel. Gray formats store luma.
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := to8(c.R), to8(c.G), to8(c.B), to8(c.A)
	px := p.pixel(x, y)
	switch p.format {
	case FormatGray8:
		px[0] = gray(r, g, b)
	case FormatGrayAlpha8:
		px[0], px[1] = gray(r, g, b), a
	case FormatRGB8:
		px[0], px[1], px[2] = r, g, b
	case FormatRGBA8:
		px[0], px[1], px[2], px[3] = r, g, b, a
	}
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	px := p.pixel(x, y)
	var r, g, b, a uint8
	switch p.format {
	case FormatGray8:
		r, g, b, a = px[0], px[0], px[0], 255
	case FormatGrayAlpha8:
		r, g, b, a = px[0], px[0], px[0], px[1]
	case FormatRGB8:
		r, g, b, a = px[0], px[1], px[2], 255
	case FormatRGBA8:
		r, g, b, a = px[0], px[1], px[2], px[3]
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	if p.width == 0 || p.height == 0 {
		return
	}
	p.SetPixel(0, 0, c)
	ch := p.Channels()
	first := p.data[:ch]
	for i := ch; i < len(p.data); i += ch {
		copy(p.data[i:i+ch], first)
	}
}

// Blur blurs the pixmap in place. The second buffer the blur needs is taken
// from a package-level pool and returned afterwards.
func (p *Pixmap) Blur(sigma float64, opts ...Option) error {
	if p.width == 0 || p.height == 0 {
		return nil
	}

	scratch := scratchPool.Get(len(p.data))
	in, out := p.data, scratch
	err := GaussianBlur(&in, &out, p.width, p.height, p.Channels(), sigma, opts...)
	// GaussianBlur leaves the result in the array passed as in.
	scratchPool.Put(out)
	return err
}

// ToImage converts the pixmap to a standard library image.
// Gray8 pixmaps become *image.Gray, all others *image.NRGBA.
func (p *Pixmap) ToImage() (image.Image, error) {
	return intImage.Deinterleave(p.data, p.width, p.height, p.format)
}

// Save encodes the pixmap to path, choosing the codec from the extension
// (.png, .jpg, .jpeg, .bmp, .tif, .tiff).
func (p *Pixmap) Save(path string) error {
	img, err := p.ToImage()
	if err != nil {
		return err
	}
	return intImage.Save(path, img)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	img, err := p.ToImage()
	if err != nil {
		return err
	}
	return intImage.SaveAs(path, img, ".png")
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}

// pixel returns the samples of pixel (x, y).
func (p *Pixmap) pixel(x, y int) []uint8 {
	c := p.Channels()
	i := (y*p.width + x) * c
	return p.data[i : i+c]
}

// gray converts RGB bytes to luma with the standard library weights.
func gray(r, g, b uint8) uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: r, G: g, B: b, A: 255}).(color.Gray).Y
}
