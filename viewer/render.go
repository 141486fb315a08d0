package viewer

import (
	"fmt"

	"github.com/gogpu/hershey"
	"github.com/gogpu/hershey/raster"
	"github.com/gogpu/hershey/text"
)

// Colors and placement of a rendered frame.
var (
	Background = raster.Hex24(0x201d1a)
	Foreground = raster.Hex24(0xffefea)
	Specimen   = raster.Hex24(0xffffff)

	glyphAnchor = raster.Pt(64, 96)
)

const (
	glyphScale    = 3
	captionScale  = 1
	specimenScale = 2
	captionOffset = 128
)

// Caption returns the line drawn next to the enlarged glyph.
func Caption(s State) string {
	f := s.CurrentFont()
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%s (#%d) ch%d", f.Name, s.Font, s.Glyph)
}

// Render draws s into dst: the selected glyph enlarged, a caption in the
// UI font beside it, and the specimen text at s.Anchor.
func Render(s State, dst *raster.Pixmap) {
	dst.Clear(Background)

	f := s.CurrentFont()
	if f == nil {
		return
	}
	if g := s.CurrentGlyph(); g != nil {
		text.DrawGlyph(dst, g, glyphAnchor, glyphScale, Foreground)
	}
	text.DrawText(dst, s.UIFont(), Caption(s),
		glyphAnchor.Add(raster.Pt(captionOffset, 0)), captionScale, Foreground)
	end := text.DrawText(dst, f, s.Specimen, s.Anchor, specimenScale, Specimen)

	hershey.Logger().Debug("viewer: rendered frame",
		"font", f.Name, "glyph", s.Glyph, "specimenEnd", end.X)
}
