package raster

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a non-premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex24 returns the opaque color 0xRRGGBB.
func Hex24(v uint32) RGBA {
	return fromNRGBA(color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff})
}

// NRGBA returns c as an 8-bit color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	return fromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

func fromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// ParseColor accepts an SVG color name ("white", "slategray") or a hex
// color in the forms RGB, RGBA, RRGGBB and RRGGBBAA with an optional '#'.
func ParseColor(s string) (RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return FromColor(c), nil
	}

	hex := strings.TrimPrefix(name, "#")
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i == len(digits) {
			return RGBA{}, fmt.Errorf("raster: invalid color %q", s)
		}
		d, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, fmt.Errorf("raster: invalid color %q", s)
		}
		digits[i] = d
	}

	var c color.NRGBA
	switch len(hex) {
	case 3, 4:
		c = color.NRGBA{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 0xff}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
	case 6, 8:
		c = color.NRGBA{R: digits[0]<<4 | digits[1], G: digits[2]<<4 | digits[3], B: digits[4]<<4 | digits[5], A: 0xff}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return RGBA{}, fmt.Errorf("raster: invalid color %q", s)
	}
	return fromNRGBA(c), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

func to8(x float64) uint8 {
	x = x*255 + 0.5
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
