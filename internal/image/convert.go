package image

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Interleave converts img into tightly packed samples of the given format.
// Colors are converted to straight (non-premultiplied) alpha first.
// It returns the packed data with the image width and height.
func Interleave(img image.Image, f Format) ([]uint8, int, int, error) {
	if !f.IsValid() {
		return nil, 0, 0, fmt.Errorf("%w: %d", ErrInvalidFormat, f)
	}

	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	c := f.Channels()
	data := make([]uint8, f.ImageBytes(w, h))

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dst := data[y*w*c : (y+1)*w*c]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			q := dst[x*c : x*c+c]
			switch f {
			case FormatGray8:
				q[0] = luma(p)
			case FormatGrayAlpha8:
				q[0] = luma(p)
				q[1] = p[3]
			case FormatRGB8:
				copy(q, p[:3])
			case FormatRGBA8:
				copy(q, p)
			}
		}
	}

	return data, w, h, nil
}

// Deinterleave wraps packed samples in a standard library image.
// Gray8 becomes *image.Gray and every other format *image.NRGBA.
// The returned image does not share memory with data.
func Deinterleave(data []uint8, w, h int, f Format) (image.Image, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFormat, f)
	}
	if w < 0 || h < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < f.ImageBytes(w, h) {
		return nil, ErrDataTooSmall
	}

	rect := image.Rect(0, 0, w, h)
	if f == FormatGray8 {
		img := image.NewGray(rect)
		copy(img.Pix, data[:w*h])
		return img, nil
	}

	img := image.NewNRGBA(rect)
	c := f.Channels()
	for i := 0; i < w*h; i++ {
		p := data[i*c : i*c+c]
		q := img.Pix[i*4 : i*4+4]
		switch f {
		case FormatGrayAlpha8:
			q[0], q[1], q[2], q[3] = p[0], p[0], p[0], p[1]
		case FormatRGB8:
			q[0], q[1], q[2], q[3] = p[0], p[1], p[2], 0xff
		case FormatRGBA8:
			copy(q, p)
		}
	}
	return img, nil
}

// toNRGBA returns img as a zero-origin *image.NRGBA, converting if needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// luma converts a straight-alpha RGB triple to gray using the standard
// library's weights.
func luma(p []uint8) uint8 {
	return color.GrayModel.Convert(color.NRGBA{R: p[0], G: p[1], B: p[2], A: 0xff}).(color.Gray).Y
}
