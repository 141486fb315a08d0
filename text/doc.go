// Package text draws Hershey glyphs and strings into a raster.Pixmap.
//
// Glyph outlines are traced as straight segments between consecutive
// vertices with raster.Line. There is no anti-aliasing and no per-pixel
// clipping: a segment with either end outside the pixmap is skipped as a
// whole.
//
// Layout works in font units. A Cursor tracks the pen; each glyph advances
// it by Right - Left and a newline returns it to column zero one line
// height lower. Because the cursor is integral, drawing a string in pieces
// (feeding the returned cursor back in) places glyphs exactly where drawing
// it in one call would.
//
//	pm := raster.NewPixmap(640, 480)
//	font, err := hershey.LoadFile("fonts/futural.jhf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	end := text.DrawText(pm, font, "Hello,\nworld", raster.Pt(40, 80), 2, raster.White)
//	text.DrawTextFrom(pm, font, "!", raster.Pt(40, 80), 2, raster.White, end)
package text
