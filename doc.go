// Package hershey decodes Hershey vector fonts in the .jhf text format.
//
// # Overview
//
// A .jhf file holds one glyph per line. Each record carries a glyph id, a
// declared vertex count, two side bearings and a run of vertex pairs, every
// coordinate encoded as a character offset from 'R'. The pair " R" is a pen
// lift: the next vertex starts a new stroke.
//
// # Quick Start
//
//	f, err := hershey.LoadFile("fonts/futural.jhf")
//	if err != nil {
//	    return err
//	}
//	g, ok := f.Lookup('A')
//	for stroke := range g.Strokes() {
//	    // stroke is a polyline in font units, y down
//	}
//
// Drawing lives in the sub-packages: raster rasterizes lines into a
// Pixmap and text lays out and draws strings.
//
// # Records
//
// Decode splits the id from the count by scanning for spaces.
// DecodeFixedWidth reads the historical column layout instead, which also
// accepts records whose id runs into the count. ParseFont uses the grammar
// chosen with WithGrammar and logs a warning when the other grammar would
// read a record differently.
//
// The declared vertex count is informational. Decoding always consumes the
// whole line.
//
// # Coordinate System
//
// Font units are small signed integers around the glyph origin:
//   - X increases right
//   - Y increases down
//   - the pen advances by Right - Left per glyph
package hershey

// Version is the current version of the library.
const Version = "0.1.0"
