package fastblur

import (
	"errors"
	"image"
	"path/filepath"
	"slices"
	"testing"
)

// Verify at compile time that Pixmap implements image.Image.
var _ image.Image = (*Pixmap)(nil)

func mustPixmap(t *testing.T, w, h int, f Format) *Pixmap {
	t.Helper()
	p, err := NewPixmap(w, h, f)
	if err != nil {
		t.Fatalf("NewPixmap(%d, %d, %v) = %v", w, h, f, err)
	}
	return p
}

func TestNewPixmap(t *testing.T) {
	p := mustPixmap(t, 7, 5, FormatRGB8)
	if p.Width() != 7 || p.Height() != 5 {
		t.Errorf("size = %dx%d, want 7x5", p.Width(), p.Height())
	}
	if p.Channels() != 3 {
		t.Errorf("Channels() = %d, want 3", p.Channels())
	}
	if len(p.Data()) != 7*5*3 {
		t.Errorf("len(Data()) = %d, want %d", len(p.Data()), 7*5*3)
	}

	if _, err := NewPixmap(-1, 5, FormatRGB8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewPixmap(1, 1, Format(99)); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("invalid format error = %v, want ErrInvalidChannels", err)
	}
}

func TestNewPixmapFromData(t *testing.T) {
	data := make([]uint8, 20)
	p, err := NewPixmapFromData(data, 2, 2, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	p.SetPixel(0, 0, White)
	if data[0] != 255 {
		t.Error("NewPixmapFromData should wrap the caller's slice")
	}
	if len(p.Data()) != 16 {
		t.Errorf("len(Data()) = %d, want 16", len(p.Data()))
	}

	if _, err := NewPixmapFromData(data[:15], 2, 2, FormatRGBA8); !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short data error = %v, want ErrBufferTooSmall", err)
	}
}

func TestPixmapSetGetPixel(t *testing.T) {
	tests := []struct {
		format Format
		set    RGBA
		want   RGBA
	}{
		{FormatRGBA8, RGBA2(1, 0, 0, 0.6), RGBA2(1, 0, 0, 153.0/255)},
		{FormatRGB8, RGBA2(0, 1, 0, 0.2), RGB(0, 1, 0)},
		{FormatGray8, White, White},
		{FormatGrayAlpha8, RGBA2(0, 0, 0, 0.2), RGBA2(0, 0, 0, 51.0/255)},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			p := mustPixmap(t, 3, 3, tt.format)
			p.SetPixel(1, 2, tt.set)
			if got := p.GetPixel(1, 2); got != tt.want {
				t.Errorf("GetPixel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	p := mustPixmap(t, 2, 2, FormatRGBA8)
	p.SetPixel(-1, 0, White)
	p.SetPixel(2, 0, White)
	p.SetPixel(0, 5, White)
	for _, v := range p.Data() {
		if v != 0 {
			t.Fatal("out-of-bounds SetPixel modified the pixmap")
		}
	}
	if got := p.GetPixel(3, 3); got != Transparent {
		t.Errorf("GetPixel(out of bounds) = %v, want Transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	p := mustPixmap(t, 4, 3, FormatRGBA8)
	p.Clear(Red)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := p.GetPixel(x, y); got != Red {
				t.Fatalf("GetPixel(%d, %d) = %v, want Red", x, y, got)
			}
		}
	}
}

func TestPixmapClone(t *testing.T) {
	p := mustPixmap(t, 2, 2, FormatGray8)
	p.Clear(White)
	c := p.Clone()
	c.Clear(Black)
	if p.GetPixel(0, 0) != White {
		t.Error("Clone should not share data with the original")
	}
}

func TestPixmapConvert(t *testing.T) {
	p := mustPixmap(t, 2, 1, FormatRGB8)
	p.SetPixel(0, 0, White)
	p.SetPixel(1, 0, Black)

	g, err := p.Convert(FormatGray8)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{255, 0}; !slices.Equal(g.Data(), want) {
		t.Errorf("gray data = %v, want %v", g.Data(), want)
	}

	rgba, err := g.Convert(FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	if want := []uint8{255, 255, 255, 255, 0, 0, 0, 255}; !slices.Equal(rgba.Data(), want) {
		t.Errorf("rgba data = %v, want %v", rgba.Data(), want)
	}
}

func TestPixmapBlur(t *testing.T) {
	p := mustPixmap(t, 21, 21, FormatGray8)
	p.SetPixel(10, 10, White)
	data := p.Data()

	if err := p.Blur(2); err != nil {
		t.Fatal(err)
	}
	if &p.Data()[0] != &data[0] {
		t.Error("Blur should keep the pixmap's backing array")
	}
	center := p.Data()[10*21+10]
	if center == 0 || center == 255 {
		t.Errorf("center = %d, want spread below 255", center)
	}
	if corner := p.Data()[0]; corner != 0 {
		t.Errorf("corner = %d, want 0", corner)
	}

	if err := p.Blur(1, WithPasses(0)); !errors.Is(err, ErrInvalidPasses) {
		t.Errorf("Blur with zero passes error = %v, want ErrInvalidPasses", err)
	}
}

func TestPixmapBlurUniform(t *testing.T) {
	p := mustPixmap(t, 16, 9, FormatRGBA8)
	p.Clear(RGBA2(0.2, 0.4, 0.6, 0.8))
	want := slices.Clone(p.Data())

	if err := p.Blur(3, WithParallel(true)); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.Data(), want) {
		t.Error("blurring a uniform pixmap should not change it")
	}
}

func TestPixmapBlurManySizesBoundsScratch(t *testing.T) {
	largest := 0
	for i := 0; i < 50; i++ {
		p := mustPixmap(t, 8+i, 5+2*i, FormatRGBA8)
		largest = max(largest, len(p.Data()))
		p.SetPixel(p.Width()/2, p.Height()/2, RGB(1, 1, 1))
		if err := p.Blur(1.5); err != nil {
			t.Fatalf("size %dx%d: Blur() = %v", p.Width(), p.Height(), err)
		}
	}

	if n := scratchPool.Len(); n > scratchBuffers {
		t.Errorf("scratch pool holds %d buffers, want <= %d", n, scratchBuffers)
	}
	if got := scratchPool.Retained(); got > scratchBuffers*largest {
		t.Errorf("scratch pool retains %d bytes, want <= %d", got, scratchBuffers*largest)
	}
}

func TestPixmapSaveLoad(t *testing.T) {
	p := mustPixmap(t, 5, 4, FormatRGBA8)
	p.Clear(RGBA2(0.2, 0.4, 0.6, 1))
	p.SetPixel(3, 1, Red)

	for _, name := range []string{"out.png", "out.bmp", "out.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := p.Save(path); err != nil {
				t.Fatalf("Save() = %v", err)
			}
			got, err := LoadPixmap(path, FormatRGBA8)
			if err != nil {
				t.Fatalf("LoadPixmap() = %v", err)
			}
			if !slices.Equal(got.Data(), p.Data()) {
				t.Errorf("round trip through %s changed the pixels", name)
			}
		})
	}
}

func TestPixmapSavePNGIgnoresExtension(t *testing.T) {
	p := mustPixmap(t, 2, 2, FormatGray8)
	path := filepath.Join(t.TempDir(), "gray.dat")
	if err := p.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if _, err := LoadPixmap(path, FormatGray8); err != nil {
		t.Errorf("LoadPixmap() = %v", err)
	}
}

func TestPixmapSaveUnsupported(t *testing.T) {
	p := mustPixmap(t, 1, 1, FormatRGB8)
	if err := p.Save(filepath.Join(t.TempDir(), "x.xyz")); err == nil {
		t.Error("Save with an unknown extension should fail")
	}
}

func BenchmarkPixmapBlur(b *testing.B) {
	p, _ := NewPixmap(256, 256, FormatRGBA8)
	p.Clear(Red)
	b.ReportAllocs()
	for b.Loop() {
		_ = p.Blur(4)
	}
}
