package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Pixmap is a rectangular 8-bit RGBA pixel buffer (non-premultiplied).
// It implements draw.Image.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // 4 bytes per pixel, row-major
}

// NewPixmap creates a transparent pixmap. Negative sizes are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Contains reports whether (x, y) lies inside the pixmap.
func (p *Pixmap) Contains(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel writes c at (x, y). Writes outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.setNRGBA(x, y, c.NRGBA())
}

func (p *Pixmap) setNRGBA(x, y int, c color.NRGBA) {
	if !p.Contains(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color at (x, y), or Transparent outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !p.Contains(x, y) {
		return Transparent
	}
	return fromNRGBA(p.nrgbaAt(x, y))
}

func (p *Pixmap) nrgbaAt(x, y int) color.NRGBA {
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Clear fills the pixmap with c.
func (p *Pixmap) Clear(c RGBA) {
	n := c.NRGBA()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = n.R
		p.data[i+1] = n.G
		p.data[i+2] = n.B
		p.data[i+3] = n.A
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: closing %s: %w", path, cerr)
		}
	}()
	return p.EncodePNG(f)
}

// At implements image.Image.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.Contains(x, y) {
		return color.NRGBA{}
	}
	return p.nrgbaAt(x, y)
}

// Set implements draw.Image.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.setNRGBA(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
