// Package viewer holds the state of a Hershey font viewer as a plain value.
//
// Input is fed through Update one Event at a time; Update never mutates its
// argument. State.Dirty says whether the visible state changed since the
// last Redrawn event, so a host loop only has to call Render when it is set:
//
//	s := viewer.New(fonts)
//	for ev := range events {
//	    s = viewer.Update(s, ev)
//	    if s.Dirty {
//	        viewer.Render(s, pm)
//	        s = viewer.Update(s, viewer.Redrawn{})
//	    }
//	}
package viewer

import (
	"github.com/gogpu/hershey"
	"github.com/gogpu/hershey/raster"
)

// DefaultSpecimen is the text shown before anything is typed.
const DefaultSpecimen = "the quick brown fox jumped\nover the lazy dog\nTHE QUICK BROWN FOX JUMPED\nOVER THE LAZY DOG\n(0123456789)\n<HTML> ? @"

// uiFontIndex is the preferred font for captions.
const uiFontIndex = 5

// State is everything the viewer shows.
type State struct {
	Fonts []*hershey.Font

	// Font and Glyph select the glyph shown enlarged.
	Font  int
	Glyph int

	Specimen string

	// Anchor is where the specimen text starts.
	Anchor raster.Point

	// Dirty is set when the state changed since the last Redrawn event.
	Dirty bool
}

// New returns the initial state for fonts.
func New(fonts []*hershey.Font) State {
	return State{
		Fonts:    fonts,
		Specimen: DefaultSpecimen,
		Anchor:   raster.Pt(64, 240),
		Dirty:    true,
	}
}

// CurrentFont returns the selected font, or nil when there are no fonts.
func (s State) CurrentFont() *hershey.Font {
	if s.Font < 0 || s.Font >= len(s.Fonts) {
		return nil
	}
	return s.Fonts[s.Font]
}

// CurrentGlyph returns the selected glyph, or nil.
func (s State) CurrentGlyph() *hershey.Glyph {
	f := s.CurrentFont()
	if f == nil {
		return nil
	}
	g, _ := f.Glyph(s.Glyph)
	return g
}

// UIFont returns the font used for captions: the sixth font, or the last
// one when there are fewer.
func (s State) UIFont() *hershey.Font {
	if len(s.Fonts) == 0 {
		return nil
	}
	return s.Fonts[min(uiFontIndex, len(s.Fonts)-1)]
}

// Event is an input to Update.
type Event interface {
	event()
}

type (
	// NextFont selects the following font.
	NextFont struct{}
	// PrevFont selects the preceding font.
	PrevFont struct{}
	// NextGlyph selects the following glyph of the current font.
	NextGlyph struct{}
	// PrevGlyph selects the preceding glyph.
	PrevGlyph struct{}
	// TypeRune appends R to the specimen text.
	TypeRune struct{ R rune }
	// Backspace removes the last rune of the specimen text.
	Backspace struct{}
	// MoveTo moves the specimen anchor.
	MoveTo struct{ P raster.Point }
	// Redrawn reports that the host has rendered the current state.
	Redrawn struct{}
)

func (NextFont) event()  {}
func (PrevFont) event()  {}
func (NextGlyph) event() {}
func (PrevGlyph) event() {}
func (TypeRune) event()  {}
func (Backspace) event() {}
func (MoveTo) event()    {}
func (Redrawn) event()   {}

// Update returns the state after ev. Font and glyph indices are clamped to
// what the fonts hold.
func Update(s State, ev Event) State {
	next := s
	switch ev := ev.(type) {
	case NextFont:
		next.Font++
	case PrevFont:
		next.Font--
	case NextGlyph:
		next.Glyph++
	case PrevGlyph:
		next.Glyph--
	case TypeRune:
		next.Specimen += string(ev.R)
	case Backspace:
		if r := []rune(next.Specimen); len(r) > 0 {
			next.Specimen = string(r[:len(r)-1])
		}
	case MoveTo:
		next.Anchor = ev.P
	case Redrawn:
		next.Dirty = false
		return next
	}
	next = clamp(next)
	next.Dirty = s.Dirty || visibleChange(s, next)
	return next
}

func clamp(s State) State {
	s.Font = max(min(s.Font, len(s.Fonts)-1), 0)
	n := 0
	if f := s.CurrentFont(); f != nil {
		n = f.Len()
	}
	s.Glyph = max(min(s.Glyph, n-1), 0)
	return s
}

func visibleChange(a, b State) bool {
	return a.Font != b.Font ||
		a.Glyph != b.Glyph ||
		a.Specimen != b.Specimen ||
		a.Anchor != b.Anchor
}
