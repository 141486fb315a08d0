package text

import (
	"context"
	"log/slog"

	"github.com/gogpu/hershey"
	"github.com/gogpu/hershey/raster"
)

// DrawGlyph draws g with its origin at origin. Each drawable vertex is
// placed at origin + round(vertex * scale); consecutive drawable vertices
// are joined with raster.Line and a pen lift starts a new stroke.
//
// A segment is drawn only if both of its ends are inside dst. Otherwise
// the whole segment is skipped and drawing continues from its far end.
func DrawGlyph(dst *raster.Pixmap, g *hershey.Glyph, origin raster.Point, scale float64, c raster.RGBA) {
	if dst == nil || g == nil {
		return
	}

	var (
		prev    raster.Point
		hasPrev bool
		skipped int
	)
	for _, v := range g.Vertices {
		if v.IsPenUp() {
			hasPrev = false
			continue
		}
		cur := raster.Pt(int(v.X), int(v.Y)).Scale(scale).Add(origin)
		if hasPrev {
			if dst.Contains(prev.X, prev.Y) && dst.Contains(cur.X, cur.Y) {
				for p := range raster.Line(prev, cur) {
					dst.SetPixel(p.X, p.Y, c)
				}
			} else {
				skipped++
			}
		}
		prev, hasPrev = cur, true
	}

	if skipped > 0 {
		if log := hershey.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug("text: segments outside pixmap", "glyph", g.ID, "origin", origin, "skipped", skipped)
		}
	}
}

// DrawText draws s starting with the pen at column zero of the first line.
// It returns the pen position after the last rune, for use with DrawTextFrom.
//
// A rune r selects the glyph at index r - ' ' (runes below ' ' select index
// 0). Runes without a glyph are skipped and do not advance the pen.
func DrawText(dst *raster.Pixmap, f *hershey.Font, s string, origin raster.Point, scale float64, c raster.RGBA) Cursor {
	return DrawTextFrom(dst, f, s, origin, scale, c, Cursor{})
}

// DrawTextFrom is DrawText with the pen starting at start.
func DrawTextFrom(dst *raster.Pixmap, f *hershey.Font, s string, origin raster.Point, scale float64, c raster.RGBA, start Cursor) Cursor {
	d := Drawer{
		Dst:    dst,
		Font:   f,
		Origin: origin,
		Scale:  scale,
		Color:  c,
		Pen:    start,
	}
	d.DrawString(s)
	return d.Pen
}

// Drawer draws successive strings, keeping the pen between calls.
// A nil Dst lays text out without drawing it.
type Drawer struct {
	Dst    *raster.Pixmap
	Font   *hershey.Font
	Origin raster.Point
	Scale  float64
	Color  raster.RGBA

	// Options controls line height. The zero value uses DefaultLineHeight.
	Options LayoutOptions

	// Pen is the current position in font units relative to Origin.
	Pen Cursor
}

// DrawString draws s and advances d.Pen.
func (d *Drawer) DrawString(s string) {
	if d.Font == nil {
		return
	}
	lh := d.Options.lineHeight()
	for _, r := range s {
		g, next := step(d.Font, r, d.Pen, lh)
		if g != nil && d.Dst != nil {
			DrawGlyph(d.Dst, g, d.Origin.Add(GlyphOrigin(d.Pen, g, d.Scale)), d.Scale, d.Color)
		}
		d.Pen = next
	}
}

// GlyphOrigin returns the device offset, relative to the text origin, at
// which g is drawn when the pen is at pen: (pen.X - g.Left, pen.Y) * scale.
func GlyphOrigin(pen Cursor, g *hershey.Glyph, scale float64) raster.Point {
	return raster.Pt(pen.X-int(g.Left), pen.Y).Scale(scale)
}
