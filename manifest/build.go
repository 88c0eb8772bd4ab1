package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/glyph"
	"github.com/gogpu/pixkit/spritesheet"
	"github.com/gogpu/pixkit/text"
)

// Backends are the collaborators used to build tables.
type Backends struct {
	// Registry receives the manifest's font files. Required when the
	// manifest lists fonts.
	Registry *text.Registry

	Rasterizer glyph.Rasterizer
	Slicer     glyph.Slicer

	// Progress, if set, is called after each glyph of each table.
	Progress func(table string, done, total int)
}

// DefaultBackends returns the x/image rasterizer over a registry of the
// Go fonts and a file-based spritesheet slicer.
func DefaultBackends() Backends {
	reg := text.NewRegistry()
	return Backends{
		Registry:   reg,
		Rasterizer: text.NewRasterizer(reg),
		Slicer:     spritesheet.NewSlicer(),
	}
}

// Built is a table built from a manifest entry.
type Built struct {
	Name  string
	Table *glyph.Table
}

type sourceKind int

const (
	sourceFont sourceKind = iota
	sourceRange
	sourceSheet
)

// job is a validated table entry.
type job struct {
	kind  sourceKind
	font  glyph.Font
	sheet glyph.Sheet
	sel   glyph.Selection
	cr    glyph.CodeRange
	opts  []glyph.Option
}

// compile validates t and converts it to a job.
func (t *TableSpec) compile() (job, error) {
	var j job
	switch {
	case t.Font != nil && t.Spritesheet != nil:
		return j, fmt.Errorf("%w: both font and spritesheet set", ErrInvalidTable)
	case t.Font == nil && t.Spritesheet == nil:
		return j, fmt.Errorf("%w: one of font or spritesheet is required", ErrInvalidTable)
	}

	if t.LowercaseAliases {
		j.opts = append(j.opts, glyph.WithLowercaseAliases())
	}

	if t.Spritesheet != nil {
		if t.Range != nil {
			return j, fmt.Errorf("%w: range needs a font", ErrInvalidTable)
		}
		sel, err := glyph.ParseSelection(t.Selection)
		if err != nil {
			return j, err
		}
		s := t.Spritesheet
		j.kind = sourceSheet
		j.sel = sel
		j.sheet = glyph.Sheet{
			Path:         s.Path,
			SpriteWidth:  s.SpriteWidth,
			SpriteHeight: s.SpriteHeight,
			Columns:      s.Columns,
			Count:        s.Count,
			Margin:       s.Margin,
		}
		if t.CheckLengths != nil {
			j.opts = append(j.opts, glyph.WithLengthCheck(*t.CheckLengths))
		}
		return j, nil
	}

	if t.CheckLengths != nil {
		return j, fmt.Errorf("%w: check_lengths applies to spritesheets only", ErrInvalidTable)
	}
	f := t.Font
	if f.Name == "" {
		return j, fmt.Errorf("%w: font name is required", ErrInvalidTable)
	}
	if f.Size <= 0 {
		return j, fmt.Errorf("%w: font size must be positive", ErrInvalidTable)
	}
	col := pixkit.White
	if f.Color != "" {
		c, err := pixkit.ParseHex(f.Color)
		if err != nil {
			return j, err
		}
		col = c
	}
	j.font = glyph.Font{Name: f.Name, Size: f.Size, Color: col}

	switch {
	case t.Selection != nil && t.Range != nil:
		return j, fmt.Errorf("%w: selection and range are exclusive", ErrInvalidTable)
	case t.Range != nil:
		cr, err := glyph.ParseCodeRange(t.Range)
		if err != nil {
			return j, err
		}
		j.kind = sourceRange
		j.cr = cr
	default:
		sel, err := glyph.ParseSelection(t.Selection)
		if err != nil {
			return j, err
		}
		j.kind = sourceFont
		j.sel = sel
	}
	return j, nil
}

// Build registers the manifest's fonts and builds every table in order.
func (m *Manifest) Build(b Backends) ([]Built, error) {
	if len(m.Fonts) > 0 && b.Registry == nil {
		return nil, fmt.Errorf("manifest: %d fonts listed but no registry", len(m.Fonts))
	}
	for _, f := range m.Fonts {
		if err := b.Registry.RegisterFile(f.Name, m.resolve(f.Path)); err != nil {
			return nil, fmt.Errorf("manifest: font %q: %w", f.Name, err)
		}
	}

	built := make([]Built, 0, len(m.Tables))
	for i := range m.Tables {
		ts := &m.Tables[i]
		table, err := m.buildTable(ts, b)
		if err != nil {
			return nil, fmt.Errorf("manifest: table %q: %w", ts.Name, err)
		}
		pixkit.Logger().Debug("manifest: built table", "table", ts.Name, "keys", table.Len())
		built = append(built, Built{Name: ts.Name, Table: table})
	}
	return built, nil
}

func (m *Manifest) buildTable(ts *TableSpec, b Backends) (*glyph.Table, error) {
	j, err := ts.compile()
	if err != nil {
		return nil, err
	}
	opts := j.opts
	if b.Progress != nil {
		name := ts.Name
		opts = append(opts, glyph.WithProgress(func(done, total int) { b.Progress(name, done, total) }))
	}

	switch j.kind {
	case sourceSheet:
		if b.Slicer == nil {
			return nil, fmt.Errorf("manifest: no slicer configured")
		}
		j.sheet.Path = m.resolve(j.sheet.Path)
		return glyph.FromSpritesheet(b.Slicer, j.sheet, j.sel, opts...)
	case sourceRange:
		if b.Rasterizer == nil {
			return nil, fmt.Errorf("manifest: no rasterizer configured")
		}
		return glyph.FromCodeRange(b.Rasterizer, j.cr, j.font, opts...)
	default:
		if b.Rasterizer == nil {
			return nil, fmt.Errorf("manifest: no rasterizer configured")
		}
		return glyph.FromFont(b.Rasterizer, j.font, j.sel, opts...)
	}
}

// resolve makes a relative path relative to the manifest directory.
func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || m.Dir == "" {
		return path
	}
	return filepath.Join(m.Dir, path)
}
