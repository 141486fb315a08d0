// Package raster turns line segments into pixels.
//
// Line generates the pixels of a segment with integer incremental-error
// (Bresenham) stepping; Pixmap is the buffer those pixels are written to.
// Line does no clipping and no writing: callers decide what to do with
// each coordinate.
package raster

import "iter"

// Line returns the pixels from a to b inclusive. The axis with the larger
// delta advances by one each step; the other axis steps when the
// accumulated error passes half a pixel. a == b yields the single point a.
//
// The sequence is computed on each iteration, so it can be ranged over any
// number of times. Line(b, a) yields the points of Line(a, b) in reverse
// order.
func Line(a, b Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dx, dy := b.X-a.X, b.Y-a.Y
		sx, sy := sign(dx), sign(dy)
		dx, dy = abs(dx), abs(dy)

		// Exact half-pixel ties round toward whichever endpoint sorts first.
		tieStep := b.Less(a)

		p := a
		if dx >= dy {
			e := 0
			for i := 0; ; i++ {
				if !yield(p) || i == dx {
					return
				}
				p.X += sx
				e += dy
				if 2*e > dx || (tieStep && 2*e == dx) {
					p.Y += sy
					e -= dx
				}
			}
		}

		e := 0
		for i := 0; ; i++ {
			if !yield(p) || i == dy {
				return
			}
			p.Y += sy
			e += dx
			if 2*e > dy || (tieStep && 2*e == dy) {
				p.X += sx
				e -= dy
			}
		}
	}
}

// LineLen returns the number of points Line(a, b) yields.
func LineLen(a, b Point) int {
	return max(abs(b.X-a.X), abs(b.Y-a.Y)) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
