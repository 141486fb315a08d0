package text

import (
	"testing"

	"github.com/gogpu/hershey"
)

func TestMeasure(t *testing.T) {
	f := testFont(t)
	tests := []struct {
		s    string
		want Cursor
	}{
		{"", Cursor{}},
		{"!", Cursor{X: 6}},
		{"! !", Cursor{X: 28}},
		{"!!\n!", Cursor{X: 6, Y: DefaultLineHeight}},
		{"\n\n", Cursor{Y: 2 * DefaultLineHeight}},
		{"\t", Cursor{X: 16}}, // below ' ' maps to the space glyph
		{"!#!", Cursor{X: 12}},
	}
	for _, tt := range tests {
		if got := Measure(f, tt.s); got != tt.want {
			t.Errorf("Measure(%q) = %+v, want %+v", tt.s, got, tt.want)
		}
	}
}

func TestMeasureAdditive(t *testing.T) {
	f := testFont(t)
	pairs := [][2]string{
		{"!", "!"},
		{"! ", " !"},
		{"", "!!"},
		{"!!!", ""},
		{"#!", "é "},
	}
	for _, p := range pairs {
		whole := Measure(f, p[0]+p[1])
		a, b := Measure(f, p[0]), Measure(f, p[1])
		if whole.X != a.X+b.X {
			t.Errorf("advance(%q) = %d, want %d + %d", p[0]+p[1], whole.X, a.X, b.X)
		}
		if cont := MeasureFrom(f, p[1], a, LayoutOptions{}); cont != whole {
			t.Errorf("MeasureFrom(%q, %+v) = %+v, want %+v", p[1], a, cont, whole)
		}
	}
}

func TestMeasureLineHeight(t *testing.T) {
	f := testFont(t)
	got := MeasureFrom(f, "!\n!", Cursor{X: 100}, LayoutOptions{LineHeight: 40})
	if got != (Cursor{X: 6, Y: 40}) {
		t.Errorf("MeasureFrom = %+v, want {6 40}", got)
	}
}

func TestWidth(t *testing.T) {
	f := testFont(t)
	if w := Width(f, "!\n! !\n!!"); w != 28 {
		t.Errorf("Width = %d, want 28", w)
	}
	if Width(nil, "!") != 0 {
		t.Error("Width with nil font should be 0")
	}
	if Width(&hershey.Font{}, "abc") != 0 {
		t.Error("Width with empty font should be 0")
	}
}
