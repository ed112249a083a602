package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Registered for image.Decode.
	_ "image/gif"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrUnsupportedFormat is returned when a file extension has no encoder.
	ErrUnsupportedFormat = errors.New("image: unsupported file format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is used when encoding JPEG files.
const DefaultJPEGQuality = 90

// Load decodes the image stored at path. PNG, JPEG, GIF, BMP, TIFF and WebP
// are recognized by content, not by extension.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	return img, err
}

// LoadFromBytes decodes an image from a byte slice.
func LoadFromBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image and reports the detected codec name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return img, name, nil
}

// Save encodes img to path, choosing the codec from the file extension.
func Save(path string, img image.Image) error {
	return SaveAs(path, img, filepath.Ext(path))
}

// SaveAs encodes img to path with the codec named by ext, whatever the
// file extension. The file is removed if encoding fails.
func SaveAs(path string, img image.Image, ext string) error {
	if !CanEncode(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := Encode(f, img, ext); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

// Encode writes img to w using the codec named by ext
// (".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"; the dot is optional).
func Encode(w io.Writer, img image.Image, ext string) error {
	var err error
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("image: encode %s: %w", ext, err)
	}
	return nil
}

// CanEncode reports whether Encode supports the extension.
func CanEncode(ext string) bool {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "png", "jpg", "jpeg", "bmp", "tif", "tiff":
		return true
	default:
		return false
	}
}
