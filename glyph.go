package hershey

import (
	"image"
	"iter"
)

// Vertex is one entry of a glyph's outline: either a drawable point or a
// pen-lift marker. A pen lift breaks the polyline; its X and Y are zero and
// carry no meaning.
type Vertex struct {
	X, Y int8
	Lift bool
}

// PenUp is the pen-lift marker.
var PenUp = Vertex{Lift: true}

// Pt returns a drawable vertex.
func Pt(x, y int8) Vertex {
	return Vertex{X: x, Y: y}
}

// IsPenUp reports whether v is a pen-lift marker.
func (v Vertex) IsPenUp() bool {
	return v.Lift
}

// Glyph is one decoded character of a Hershey font.
type Glyph struct {
	// ID is the number at the start of the record. Many fonts use 12345 for
	// every glyph, so it must not be used as a key; use the glyph's position
	// in its Font instead.
	ID int

	// DeclaredCount is the record's vertex count minus one (the format
	// counts the bearing pair as a vertex). It is a hint and is not checked
	// against len(Vertices).
	DeclaredCount int

	// Left and Right are the side bearings in font units.
	Left, Right int8

	// Vertices are the outline entries in record order.
	Vertices []Vertex
}

// Advance returns the horizontal advance width in font units.
func (g *Glyph) Advance() int {
	return int(g.Right) - int(g.Left)
}

// Strokes yields each maximal run of drawable vertices. Runs are sub-slices
// of g.Vertices and must not be modified.
func (g *Glyph) Strokes() iter.Seq[[]Vertex] {
	return func(yield func([]Vertex) bool) {
		start := -1
		for i, v := range g.Vertices {
			if v.Lift {
				if start >= 0 && !yield(g.Vertices[start:i]) {
					return
				}
				start = -1
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(g.Vertices[start:])
		}
	}
}

// Bounds returns the smallest rectangle containing every drawable vertex,
// with Max exclusive. ok is false when the glyph has no drawable vertices.
func (g *Glyph) Bounds() (r image.Rectangle, ok bool) {
	for _, v := range g.Vertices {
		if v.Lift {
			continue
		}
		x, y := int(v.X), int(v.Y)
		if !ok {
			r = image.Rect(x, y, x+1, y+1)
			ok = true
			continue
		}
		r = r.Union(image.Rect(x, y, x+1, y+1))
	}
	return r, ok
}
