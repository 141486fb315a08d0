package text

import "github.com/gogpu/hershey"

// DefaultLineHeight is the distance between baselines in font units.
const DefaultLineHeight = 32

// Cursor is a pen position in font units, relative to the text origin.
type Cursor struct {
	X, Y int
}

// LayoutOptions configures text layout.
type LayoutOptions struct {
	// LineHeight is the baseline-to-baseline distance in font units.
	// Zero or negative means DefaultLineHeight.
	LineHeight int
}

func (o LayoutOptions) lineHeight() int {
	if o.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return o.LineHeight
}

// step lays out one rune. It returns the glyph to draw at pen (nil if
// nothing is drawn) and the pen position after r.
func step(f *hershey.Font, r rune, pen Cursor, lineHeight int) (*hershey.Glyph, Cursor) {
	if r == '\n' {
		return nil, Cursor{X: 0, Y: pen.Y + lineHeight}
	}
	g, ok := f.Lookup(r)
	if !ok {
		return nil, pen
	}
	return g, Cursor{X: pen.X + g.Advance(), Y: pen.Y}
}

// Measure returns the pen position after laying out s from column zero.
func Measure(f *hershey.Font, s string) Cursor {
	return MeasureFrom(f, s, Cursor{}, LayoutOptions{})
}

// MeasureFrom returns the pen position after laying out s from start.
func MeasureFrom(f *hershey.Font, s string, start Cursor, opts LayoutOptions) Cursor {
	d := Drawer{Font: f, Options: opts, Pen: start}
	d.DrawString(s)
	return d.Pen
}

// Width returns the advance of the widest line of s in font units.
func Width(f *hershey.Font, s string) int {
	if f == nil {
		return 0
	}
	widest, pen := 0, Cursor{}
	for _, r := range s {
		_, pen = step(f, r, pen, DefaultLineHeight)
		widest = max(widest, pen.X)
	}
	return widest
}
