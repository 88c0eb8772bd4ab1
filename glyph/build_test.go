package glyph

import (
	"errors"
	"image/color"
	"testing"
)

func TestFromFont(t *testing.T) {
	r := newFakeRasterizer(3, 5)
	table, err := FromFont(r, testFont, List{"AB", "C"})
	if err != nil {
		t.Fatalf("FromFont() error = %v", err)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	for _, ch := range []string{"A", "B", "C"} {
		g, ok := table.Lookup(ch)
		if !ok {
			t.Fatalf("Lookup(%q) missing", ch)
		}
		if g.ID != GlyphID(testFont, ch) {
			t.Errorf("Lookup(%q).ID = %q", ch, g.ID)
		}
	}
	if _, ok := table.Lookup("a"); ok {
		t.Error("lowercase key present without WithLowercaseAliases")
	}
}

func TestFromFont_LowercaseAliases(t *testing.T) {
	r := newFakeRasterizer(3, 5)
	table, err := FromFont(r, testFont, Single("AB?"), WithLowercaseAliases())
	if err != nil {
		t.Fatalf("FromFont() error = %v", err)
	}
	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
	upper, _ := table.Lookup("A")
	lower, ok := table.Lookup("a")
	if !ok || lower != upper {
		t.Error("a does not alias A")
	}
	if len(r.calls) != 3 {
		t.Errorf("rasterizer called %d times, want 3", len(r.calls))
	}
}

func TestFromFont_Errors(t *testing.T) {
	r := newFakeRasterizer(1, 1)
	if _, err := FromFont(r, testFont, List{}); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("FromFont(empty) error = %v, want ErrEmptySelection", err)
	}

	r.fail = map[string]error{"b": errBackend}
	if _, err := FromFont(r, testFont, Single("abc")); !errors.Is(err, errBackend) {
		t.Errorf("FromFont() error = %v, want backend error", err)
	}
}

func TestFromFont_Progress(t *testing.T) {
	var got [][2]int
	_, err := FromFont(newFakeRasterizer(1, 1), testFont, Single("xyz"),
		WithProgress(func(done, total int) { got = append(got, [2]int{done, total}) }))
	if err != nil {
		t.Fatalf("FromFont() error = %v", err)
	}
	want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
	if len(got) != len(want) {
		t.Fatalf("progress calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("progress[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromCodeRange(t *testing.T) {
	r := newFakeRasterizer(2, 2)
	table, err := FromCodeRange(r, CodeRange{Start: 0, Stop: 256}, testFont)
	if err != nil {
		t.Fatalf("FromCodeRange() error = %v", err)
	}
	if table.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", table.Len())
	}
	for cp := 0; cp < 256; cp++ {
		if _, ok := table.Lookup(string(rune(cp))); !ok {
			t.Errorf("code point %#x missing", cp)
		}
	}
}

func TestFromCodeRange_Errors(t *testing.T) {
	tests := []struct {
		name string
		cr   CodeRange
		want error
	}{
		{"inverted", CodeRange{Start: 12, Stop: 10}, ErrEmptyOrInvertedRange},
		{"empty", CodeRange{Start: 10, Stop: 10}, ErrEmptyOrInvertedRange},
		{"negative", CodeRange{Start: -1, Stop: 10}, ErrNegativeCodePoint},
		{"beyond unicode", CodeRange{Start: 0, Stop: 0x110001}, ErrCodePointOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newFakeRasterizer(1, 1)
			_, err := FromCodeRange(r, tt.cr, testFont)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromCodeRange() error = %v, want %v", err, tt.want)
			}
			if len(r.calls) != 0 {
				t.Errorf("rasterizer called for invalid range")
			}
		})
	}
}

func TestCodeRange_SkipsSurrogates(t *testing.T) {
	cr := CodeRange{Start: 0xD7FF, Stop: 0xE001}
	chars := cr.Chars()
	if len(chars) != 2 {
		t.Errorf("Chars() returned %d characters, want 2", len(chars))
	}
}

func TestParseCodeRange(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want CodeRange
	}{
		{"any list", []any{0, 256}, CodeRange{0, 256}},
		{"int list", []int{32, 127}, CodeRange{32, 127}},
		{"mapping", map[string]any{"start": 65, "stop": int64(91)}, CodeRange{65, 91}},
		{"typed", CodeRange{1, 2}, CodeRange{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodeRange(tt.in)
			if err != nil {
				t.Fatalf("ParseCodeRange() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseCodeRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCodeRange_IntegerKinds(t *testing.T) {
	want := CodeRange{Start: 0, Stop: 256}
	tests := []struct {
		name string
		in   any
	}{
		{"uint", []any{uint(0), uint(256)}},
		{"uint8 and uint16", []any{uint8(0), uint16(256)}},
		{"int8 and int16", []any{int8(0), int16(256)}},
		{"int32", []any{int32(0), int32(256)}},
		{"uint64", []any{uint64(0), uint64(256)}},
		{"map of int64", map[string]any{"start": int64(0), "stop": int64(256)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCodeRange(tt.in)
			if err != nil {
				t.Fatalf("ParseCodeRange() error = %v", err)
			}
			if got != want {
				t.Errorf("ParseCodeRange() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestParseCodeRange_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want error
	}{
		{"float bounds", []any{0.0, 10.0}, ErrInvalidRangeType},
		{"string bound", []any{"a", 10}, ErrInvalidRangeType},
		{"one value", []any{10}, ErrInvalidRangeType},
		{"scalar", 10, ErrInvalidRangeType},
		{"missing stop", map[string]any{"start": 1}, ErrInvalidRangeType},
		{"negative", []any{-5, 10}, ErrNegativeCodePoint},
		{"inverted", []any{12, 10}, ErrEmptyOrInvertedRange},
		{"huge unsigned stop", []any{uint64(0), uint64(1 << 32)}, ErrCodePointOutOfRange},
		{"huge signed stop", []any{0, int64(1) << 40}, ErrCodePointOutOfRange},
		{"stop past unicode", []any{uint32(0), uint32(0x110001)}, ErrCodePointOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCodeRange(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseCodeRange() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromSpritesheet(t *testing.T) {
	s := &gridSlicer{}
	sheet := Sheet{Path: "font.png", SpriteWidth: 8, SpriteHeight: 8, Columns: 2, Count: 4}
	table, err := FromSpritesheet(s, sheet, Rows{"AB", "CD"})
	if err != nil {
		t.Fatalf("FromSpritesheet() error = %v", err)
	}
	if table.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", table.Len())
	}
	for i, ch := range []string{"A", "B", "C", "D"} {
		g, ok := table.Lookup(ch)
		if !ok {
			t.Fatalf("Lookup(%q) missing", ch)
		}
		if r, _, _, _ := g.Image.At(0, 0).RGBA(); r>>8 != uint32(i) {
			t.Errorf("%q mapped to sprite %d, want %d", ch, r>>8, i)
		}
		if want := sheetGlyphID(sheet, i); g.ID != want {
			t.Errorf("%q ID = %q, want %q", ch, g.ID, want)
		}
	}
}

func TestFromSpritesheet_CountMismatch(t *testing.T) {
	s := &gridSlicer{}
	sheet := Sheet{Path: "font.png", SpriteWidth: 8, SpriteHeight: 8, Columns: 5, Count: 5}
	_, err := FromSpritesheet(s, sheet, Single("abcd"), WithLengthCheck(true))
	if !errors.Is(err, ErrSelectionCountMismatch) {
		t.Fatalf("FromSpritesheet() error = %v, want ErrSelectionCountMismatch", err)
	}
	var ce *CountMismatchError
	if !errors.As(err, &ce) || ce.Selection != 4 || ce.Count != 5 {
		t.Errorf("error = %#v, want CountMismatchError{4, 5}", err)
	}
	if s.calls != 0 {
		t.Error("slicer called before the length check")
	}
}

func TestFromSpritesheet_LengthCheckDisabled(t *testing.T) {
	s := &gridSlicer{}
	sheet := Sheet{Path: "font.png", SpriteWidth: 2, SpriteHeight: 2, Columns: 5, Count: 5}
	table, err := FromSpritesheet(s, sheet, Single("abcd"), WithLengthCheck(false))
	if err != nil {
		t.Fatalf("FromSpritesheet() error = %v", err)
	}
	if table.Len() != 4 {
		t.Errorf("Len() = %d, want 4", table.Len())
	}
}

func TestFromSpritesheet_LowercaseAliases(t *testing.T) {
	sheet := Sheet{Path: "caps.png", SpriteWidth: 2, SpriteHeight: 2, Columns: 3, Count: 3}
	table, err := FromSpritesheet(&gridSlicer{}, sheet, Single("AB1"), WithLowercaseAliases())
	if err != nil {
		t.Fatalf("FromSpritesheet() error = %v", err)
	}
	a, _ := table.Lookup("A")
	if g, ok := table.Lookup("a"); !ok || g != a {
		t.Error("a does not alias A")
	}
	if table.Len() != 5 {
		t.Errorf("Len() = %d, want 5", table.Len())
	}
}

func TestFromSpritesheet_SlicerErrorPropagates(t *testing.T) {
	s := &gridSlicer{err: errBackend}
	sheet := Sheet{Path: "missing.png", SpriteWidth: 2, SpriteHeight: 2, Columns: 1, Count: 1}
	if _, err := FromSpritesheet(s, sheet, Single("a")); !errors.Is(err, errBackend) {
		t.Errorf("FromSpritesheet() error = %v, want slicer error", err)
	}
}

func TestFromFont_UsesFontColor(t *testing.T) {
	f := Font{Name: "test", Size: 8, Color: color.NRGBA{R: 255, A: 255}}
	table, err := FromFont(newFakeRasterizer(1, 1), f, Single("x"))
	if err != nil {
		t.Fatalf("FromFont() error = %v", err)
	}
	g, _ := table.Lookup("x")
	if r, gr, _, _ := g.Image.At(0, 0).RGBA(); r != 0xffff || gr != 0 {
		t.Errorf("glyph color = (%d, %d), want red", r, gr)
	}
}
