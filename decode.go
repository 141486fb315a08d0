package hershey

import (
	"strconv"
	"strings"
)

// minRecordLen is the shortest record that can hold an id, a count and the
// two bearing characters.
const minRecordLen = 8

// penUpX and penUpY are the decoded offsets of the " R" pen-lift pair.
const (
	penUpX = ' ' - 'R'
	penUpY = 0
)

// DecodeOffset decodes one record character into a signed offset relative
// to 'R'. Runes far outside the printable ASCII range wrap around int8;
// no validation or clamping is done.
func DecodeOffset(r rune) int8 {
	return int8(r - 'R')
}

// Decode parses one Hershey record using the scanning grammar: the id runs
// up to the first whitespace after any leading blanks, the count runs up to
// the first rune that is neither whitespace nor a digit, and everything
// after that is the bearing pair followed by coordinate pairs.
//
// Decode is pure. On failure it returns the first error found: ErrTooShort,
// ErrInvalidSpacing, ErrInvalidAfterwards, a *NumericError (matching
// ErrNumericParse) or ErrMalformedVertices.
func Decode(line string) (Glyph, error) {
	rs := []rune(strings.TrimRightFunc(line, isSpace))
	if len(rs) < minRecordLen {
		return Glyph{}, ErrTooShort
	}

	lead := 0
	for lead < len(rs) && isSpace(rs[lead]) {
		lead++
	}
	firstSpace := indexFrom(rs, lead, isSpace)
	if firstSpace < 0 {
		return Glyph{}, ErrInvalidSpacing
	}
	firstAlpha := indexFrom(rs, firstSpace, func(r rune) bool {
		return !isSpace(r) && !isDigit(r)
	})
	if firstAlpha < 0 {
		return Glyph{}, ErrInvalidAfterwards
	}

	id, err := parseField("id", rs[:firstSpace])
	if err != nil {
		return Glyph{}, err
	}
	count, err := parseField("count", rs[firstSpace:firstAlpha])
	if err != nil {
		return Glyph{}, err
	}
	return decodeBody(id, count, rs[firstAlpha:])
}

// DecodeFixedWidth parses a record with the legacy column grammar: the id
// occupies columns 0-4 and the count columns 5-7, the count ending early at
// the first rune that is neither whitespace nor a digit. A count below one
// is rejected with ErrTooShort.
//
// The two grammars disagree on records whose id and count fields are not
// padded to their columns; see Grammar.
func DecodeFixedWidth(line string) (Glyph, error) {
	rs := []rune(strings.TrimRightFunc(line, isSpace))
	if len(rs) < minRecordLen {
		return Glyph{}, ErrTooShort
	}

	id, err := parseField("id", rs[:5])
	if err != nil {
		return Glyph{}, err
	}
	rs = rs[5:]

	end := indexFrom(rs[:3], 0, func(r rune) bool {
		return !isSpace(r) && !isDigit(r)
	})
	if end < 0 {
		end = 3
	}
	count, err := parseField("count", rs[:end])
	if err != nil {
		return Glyph{}, err
	}
	if count < 1 {
		return Glyph{}, ErrTooShort
	}
	return decodeBody(id, count, rs[end:])
}

// decodeBody decodes the bearing pair and the coordinate pairs that follow.
func decodeBody(id, count int, rs []rune) (Glyph, error) {
	if len(rs) < 2 {
		return Glyph{}, ErrTooShort
	}
	g := Glyph{
		ID:            id,
		DeclaredCount: max(count-1, 0),
		Left:          DecodeOffset(rs[0]),
		Right:         DecodeOffset(rs[1]),
	}

	coords := rs[2:]
	if len(coords)%2 != 0 {
		return Glyph{}, ErrMalformedVertices
	}
	if n := len(coords) / 2; n > 0 {
		g.Vertices = make([]Vertex, 0, n)
	}
	for i := 0; i < len(coords); i += 2 {
		x, y := DecodeOffset(coords[i]), DecodeOffset(coords[i+1])
		if x == penUpX && y == penUpY {
			g.Vertices = append(g.Vertices, PenUp)
			continue
		}
		g.Vertices = append(g.Vertices, Pt(x, y))
	}
	return g, nil
}

func parseField(field string, rs []rune) (int, error) {
	s := strings.TrimFunc(string(rs), isSpace)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, &NumericError{Field: field, Text: s, Err: err}
	}
	return int(n), nil
}

// indexFrom returns the index of the first rune at or after start that
// satisfies f, or -1.
func indexFrom(rs []rune, start int, f func(rune) bool) int {
	for i := start; i < len(rs); i++ {
		if f(rs[i]) {
			return i
		}
	}
	return -1
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Grammar selects how a record's id and count fields are delimited.
type Grammar int

const (
	// GrammarScan delimits fields by scanning (Decode). It accepts ids and
	// counts of any width.
	GrammarScan Grammar = iota

	// GrammarFixedWidth cuts fields at fixed columns (DecodeFixedWidth). It
	// accepts unpadded records such as "12345104H]..." where the id butts
	// against the count.
	GrammarFixedWidth
)

// String returns the grammar name.
func (g Grammar) String() string {
	switch g {
	case GrammarScan:
		return "scan"
	case GrammarFixedWidth:
		return "fixed-width"
	default:
		return "Grammar(" + strconv.Itoa(int(g)) + ")"
	}
}

// Decode decodes line with the grammar g.
func (g Grammar) Decode(line string) (Glyph, error) {
	if g == GrammarFixedWidth {
		return DecodeFixedWidth(line)
	}
	return Decode(line)
}

// other returns the grammar that is not g.
func (g Grammar) other() Grammar {
	if g == GrammarFixedWidth {
		return GrammarScan
	}
	return GrammarFixedWidth
}
