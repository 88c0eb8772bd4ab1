package manifest

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/pixkit/glyph"
	"github.com/gogpu/pixkit/spritesheet"
	"github.com/gogpu/pixkit/text"
)

const sample = `
tables:
  - name: title
    font: {name: goregular, size: 24, color: "#ffcc00"}
    selection: "ABC"
    lowercase_aliases: true
  - name: hud
    spritesheet: {path: hud.png, sprite_width: 4, sprite_height: 4, columns: 2, count: 4}
    selection: {rows: ["01", "23"]}
  - name: ascii
    font: {name: gomono, size: 12}
    range: [48, 58]
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(m.Tables) != 3 {
		t.Fatalf("len(Tables) = %d, want 3", len(m.Tables))
	}

	title := m.Tables[0]
	if title.Font == nil || title.Font.Size != 24 || !title.LowercaseAliases {
		t.Errorf("title = %+v, want 24pt font with aliases", title)
	}
	hud := m.Tables[1]
	if hud.Spritesheet == nil || hud.Spritesheet.SpriteWidth != 4 {
		t.Errorf("hud.Spritesheet = %+v", hud.Spritesheet)
	}

	j, err := hud.compile()
	if err != nil {
		t.Fatalf("compile(hud) error = %v", err)
	}
	if _, ok := j.sel.(glyph.Rows); !ok {
		t.Errorf("hud selection = %T, want glyph.Rows", j.sel)
	}

	j, err = m.Tables[2].compile()
	if err != nil {
		t.Fatalf("compile(ascii) error = %v", err)
	}
	if j.kind != sourceRange || j.cr != (glyph.CodeRange{Start: 48, Stop: 58}) {
		t.Errorf("ascii job = %+v, want range [48, 58)", j)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"empty document", ``, ErrNoTables},
		{"no tables", `fonts: []`, ErrNoTables},
		{
			"unnamed table",
			`tables: [{font: {name: goregular, size: 12}, selection: "A"}]`,
			ErrInvalidTable,
		},
		{
			"duplicate name",
			"tables:\n  - {name: a, font: {name: goregular, size: 12}, selection: A}\n  - {name: a, font: {name: goregular, size: 12}, selection: B}",
			ErrInvalidTable,
		},
		{
			"no source",
			`tables: [{name: a, selection: "A"}]`,
			ErrInvalidTable,
		},
		{
			"both sources",
			`tables: [{name: a, font: {name: goregular, size: 12}, spritesheet: {path: x.png}, selection: "A"}]`,
			ErrInvalidTable,
		},
		{
			"selection and range",
			`tables: [{name: a, font: {name: goregular, size: 12}, selection: "A", range: [0, 10]}]`,
			ErrInvalidTable,
		},
		{
			"zero size",
			`tables: [{name: a, font: {name: goregular}, selection: "A"}]`,
			ErrInvalidTable,
		},
		{
			"non-string element",
			`tables: [{name: a, font: {name: goregular, size: 12}, selection: ["A", 7]}]`,
			glyph.ErrNonStringElement,
		},
		{
			"mapping selection",
			`tables: [{name: a, font: {name: goregular, size: 12}, selection: {chars: "A"}}]`,
			glyph.ErrInvalidSelectionType,
		},
		{
			"float range",
			`tables: [{name: a, font: {name: goregular, size: 12}, range: [0.5, 10]}]`,
			glyph.ErrInvalidRangeType,
		},
		{
			"inverted range",
			`tables: [{name: a, font: {name: goregular, size: 12}, range: [10, 10]}]`,
			glyph.ErrEmptyOrInvertedRange,
		},
		{
			"bad color",
			`tables: [{name: a, font: {name: goregular, size: 12, color: "#12"}, selection: "A"}]`,
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte(`tables: [{name: a, font: {name: goregular, size: 12}, selection: "A", colour: red}]`))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Errorf("Parse() error = %v, want unknown field colour", err)
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	m := &Manifest{Tables: []TableSpec{
		{Name: "a"},
		{Name: "b", Font: &FontSpec{Name: "goregular"}, Selection: "A"},
	}}
	err := m.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, name := range []string{`"a"`, `"b"`} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Validate() error %q does not mention table %s", err, name)
		}
	}
}

func TestLoad_Build(t *testing.T) {
	dir := t.TempDir()

	sheet := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 4; i++ {
		r := spritesheet.SpriteRect(glyph.Sheet{SpriteWidth: 4, SpriteHeight: 4, Columns: 2}, i)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				sheet.SetNRGBA(x, y, color.NRGBA{R: uint8(i), A: 255})
			}
		}
	}
	if err := spritesheet.SavePNG(filepath.Join(dir, "hud.png"), sheet); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	path := filepath.Join(dir, "glyphs.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Dir != dir {
		t.Errorf("Dir = %q, want %q", m.Dir, dir)
	}

	progress := map[string]int{}
	b := DefaultBackends()
	b.Progress = func(table string, done, total int) { progress[table] = total }

	built, err := m.Build(b)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	names := make([]string, len(built))
	for i, bt := range built {
		names[i] = bt.Name
	}
	if strings.Join(names, ",") != "title,hud,ascii" {
		t.Errorf("tables = %v, want manifest order", names)
	}

	title := built[0].Table
	if title.Len() != 6 {
		t.Errorf("title.Len() = %d, want 6 with aliases", title.Len())
	}
	if _, ok := title.Lookup("b"); !ok {
		t.Error(`title missing alias "b"`)
	}

	hud := built[1].Table
	g, ok := hud.Lookup("2")
	if !ok {
		t.Fatal(`hud missing "2"`)
	}
	if r, _, _, _ := g.Image.At(0, 0).RGBA(); r>>8 != 2 {
		t.Errorf(`hud "2" red = %d, want sprite 2`, r>>8)
	}

	if got := built[2].Table.Len(); got != 10 {
		t.Errorf("ascii.Len() = %d, want 10", got)
	}
	if progress["ascii"] != 10 || progress["hud"] != 4 {
		t.Errorf("progress totals = %v", progress)
	}
}

func TestBuild_ExtraFont(t *testing.T) {
	dir := t.TempDir()
	reg := text.NewRegistry()

	m := &Manifest{
		Fonts:  []FontFile{{Name: "pixel", Path: "missing.ttf"}},
		Tables: []TableSpec{{Name: "a", Font: &FontSpec{Name: "pixel", Size: 12}, Selection: "A"}},
		Dir:    dir,
	}
	_, err := m.Build(Backends{Registry: reg, Rasterizer: text.NewRasterizer(reg)})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Build() error = %v, want os.ErrNotExist", err)
	}

	_, err = m.Build(Backends{})
	if err == nil {
		t.Error("Build() without a registry succeeded")
	}
}
