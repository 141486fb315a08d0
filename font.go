package hershey

// FirstRune is the code point of index 0 in every font.
const FirstRune = ' '

// FileExt is the extension of Hershey font files.
const FileExt = ".jhf"

// Font is the ordered list of glyphs decoded from one font file. A glyph's
// position is its lookup index: index 0 is FirstRune, index 1 is '!' and so on.
//
// A Font is not modified after loading and may be shared between goroutines.
type Font struct {
	// Name is the display name, usually the file's base name.
	Name string

	Glyphs []Glyph
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return len(f.Glyphs)
}

// Glyph returns the glyph at index i.
func (f *Font) Glyph(i int) (*Glyph, bool) {
	if i < 0 || i >= len(f.Glyphs) {
		return nil, false
	}
	return &f.Glyphs[i], true
}

// Lookup returns the glyph for r using the linear index r - FirstRune.
// Runes below FirstRune map to index 0.
func (f *Font) Lookup(r rune) (*Glyph, bool) {
	return f.Glyph(Index(r))
}

// Index returns the glyph index of r, saturating at zero.
func Index(r rune) int {
	return int(max(r-FirstRune, 0))
}
