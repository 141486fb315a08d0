package hershey

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testFontData is a three-glyph font: space, '!' and a bad record for '"'.
func testFontData(bad bool) []byte {
	lines := []string{recordSpace, recordExclaim}
	if bad {
		lines = append(lines, "12345  2JZR")
	} else {
		lines = append(lines, "12345  7JZ RRFRM RVFVM")
	}
	return []byte(strings.Join(lines, "\r\n") + "\r\n\n\n")
}

// writeFont writes data to dir/name and returns the path.
func writeFont(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestParseFont(t *testing.T) {
	f, err := ParseFont("test", testFontData(false))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "test" || f.Len() != 3 {
		t.Fatalf("font = %q with %d glyphs, want test with 3", f.Name, f.Len())
	}
	g, ok := f.Lookup('!')
	if !ok || len(g.Vertices) != 8 {
		t.Errorf("Lookup('!') = %+v, %v", g, ok)
	}
	quote, _ := f.Lookup('"')
	if quote.Vertices[0] != PenUp {
		t.Errorf("'\"' first vertex = %+v, want pen lift", quote.Vertices[0])
	}
}

func TestParseFontLatin1(t *testing.T) {
	// 0xC9 is 'É' in ISO-8859-1: 201-82 = 119.
	data := []byte("12345  2JZ\xc9R\n")
	f, err := ParseFont("latin1", data)
	if err != nil {
		t.Fatal(err)
	}
	if v := f.Glyphs[0].Vertices[0]; v.X != 119 || v.Y != 0 {
		t.Errorf("vertex = %+v, want (119, 0)", v)
	}
}

func TestParseFontEmpty(t *testing.T) {
	f, err := ParseFont("empty", []byte("\n\n  \n"))
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 0 {
		t.Errorf("Len = %d, want 0", f.Len())
	}
}

func TestParseFontStrict(t *testing.T) {
	_, err := ParseFont("bad", testFontData(true))
	var le *LineError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LineError", err)
	}
	if le.Line != 3 || le.Font != "bad" || !errors.Is(err, ErrMalformedVertices) {
		t.Errorf("LineError = %+v", le)
	}
	if !strings.HasPrefix(le.Error(), "bad:3: ") {
		t.Errorf("Error() = %q", le.Error())
	}
}

func TestParseFontTolerant(t *testing.T) {
	var skipped []*LineError
	f, err := ParseFont("bad", testFontData(true),
		WithMode(Tolerant),
		WithSkipHandler(func(le *LineError) { skipped = append(skipped, le) }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 3 {
		t.Errorf("Len = %d, want 3 (bad slot kept)", f.Len())
	}
	if len(skipped) != 1 || skipped[0].Line != 3 {
		t.Errorf("skipped = %v", skipped)
	}
	g, _ := f.Glyph(2)
	if g.Advance() != 0 || len(g.Vertices) != 0 {
		t.Errorf("skipped slot = %+v, want empty glyph", g)
	}
}

func TestRecords(t *testing.T) {
	recs, err := Records(testFontData(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	for i, r := range recs {
		if r.Line != i+1 {
			t.Errorf("recs[%d].Line = %d", i, r.Line)
		}
		if strings.HasSuffix(r.Text, "\r") {
			t.Errorf("recs[%d].Text keeps a carriage return", i)
		}
	}
	if recs[0].Err != nil || recs[1].Err != nil || recs[2].Err == nil {
		t.Errorf("unexpected errors: %v, %v, %v", recs[0].Err, recs[1].Err, recs[2].Err)
	}
}

func TestGrammarDisagreementLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	data := []byte(recordSpace + "\n" + recordPacked + "\n")

	if _, err := ParseFont("packed", data); !errors.Is(err, ErrNumericParse) {
		t.Errorf("scan grammar err = %v, want ErrNumericParse", err)
	}
	if !strings.Contains(buf.String(), "grammars disagree") || !strings.Contains(buf.String(), "line=2") {
		t.Errorf("missing disagreement warning in %q", buf.String())
	}

	buf.Reset()
	f, err := ParseFont("packed", data, WithGrammar(GrammarFixedWidth))
	if err != nil {
		t.Fatal(err)
	}
	if g, _ := f.Glyph(1); g.DeclaredCount != 103 {
		t.Errorf("DeclaredCount = %d, want 103", g.DeclaredCount)
	}
	if strings.Count(buf.String(), "grammars disagree") != 1 {
		t.Errorf("want exactly one disagreement warning, got %q", buf.String())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFont(t, dir, "futural.jhf", testFontData(false))

	f, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "futural" {
		t.Errorf("Name = %q, want futural", f.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.jhf")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFont(t, dir, "b.jhf", testFontData(false))
	writeFont(t, dir, "a.JHF", testFontData(false))
	writeFont(t, dir, "notes.txt", []byte("not a font"))
	if err := os.Mkdir(filepath.Join(dir, "sub.jhf"), 0o700); err != nil {
		t.Fatal(err)
	}

	fonts, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range fonts {
		names = append(names, f.Name)
	}
	if strings.Join(names, ",") != "a,b" {
		t.Errorf("names = %v, want [a b]", names)
	}

	writeFont(t, dir, "c.jhf", testFontData(true))
	if _, err := LoadDir(dir); !errors.Is(err, ErrMalformedVertices) {
		t.Errorf("strict LoadDir err = %v, want ErrMalformedVertices", err)
	}
	if fonts, err := LoadDir(dir, WithMode(Tolerant)); err != nil || len(fonts) != 3 {
		t.Errorf("tolerant LoadDir = %d fonts, %v", len(fonts), err)
	}

	if _, err := LoadDir(filepath.Join(dir, "nope")); err == nil {
		t.Error("LoadDir on a missing directory should fail")
	}
}

func TestLoadDirParallel(t *testing.T) {
	dir := t.TempDir()
	for i := range 20 {
		writeFont(t, dir, fmt.Sprintf("f%02d.jhf", i), testFontData(i == 7 || i == 13))
	}

	for _, workers := range []int{0, 1, 4, 64} {
		_, err := LoadDir(dir, WithWorkers(workers))
		var lerr *LineError
		if !errors.As(err, &lerr) || lerr.Font != "f07" || lerr.Line != 3 {
			t.Errorf("workers=%d: err = %v, want f07:3", workers, err)
		}

		fonts, err := LoadDir(dir, WithWorkers(workers), WithMode(Tolerant))
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i, f := range fonts {
			if want := fmt.Sprintf("f%02d", i); f.Name != want {
				t.Errorf("workers=%d: fonts[%d] = %s, want %s", workers, i, f.Name, want)
			}
		}
	}
}

func TestFontLookup(t *testing.T) {
	f := &Font{Glyphs: []Glyph{{ID: 1}, {ID: 2}}}
	tests := []struct {
		r    rune
		id   int
		want bool
	}{
		{' ', 1, true},
		{'!', 2, true},
		{'"', 0, false},
		{'\t', 1, true}, // below space saturates to index 0
		{'é', 0, false},
	}
	for _, tt := range tests {
		g, ok := f.Lookup(tt.r)
		if ok != tt.want || (ok && g.ID != tt.id) {
			t.Errorf("Lookup(%q) = %v, %v", tt.r, g, ok)
		}
	}
	if _, ok := f.Glyph(-1); ok {
		t.Error("Glyph(-1) should fail")
	}
}
