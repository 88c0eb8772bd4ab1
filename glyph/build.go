package glyph

import (
	"fmt"

	"github.com/gogpu/pixkit"
)

// Option configures table building.
type Option func(*buildConfig)

// buildConfig holds configuration for the From* builders.
type buildConfig struct {
	lowercaseAliases bool
	checkLengths     bool
	progress         func(done, total int)
}

// defaultBuildConfig returns the default build configuration.
func defaultBuildConfig() buildConfig {
	return buildConfig{
		checkLengths: true,
	}
}

// WithLowercaseAliases makes uppercase glyphs serve their lowercase
// characters too, for fonts that only ship capitals.
func WithLowercaseAliases() Option {
	return func(c *buildConfig) {
		c.lowercaseAliases = true
	}
}

// WithLengthCheck controls whether FromSpritesheet requires one character
// per sprite. Enabled by default.
func WithLengthCheck(enabled bool) Option {
	return func(c *buildConfig) {
		c.checkLengths = enabled
	}
}

// WithProgress registers fn to be called after each glyph is added.
func WithProgress(fn func(done, total int)) Option {
	return func(c *buildConfig) {
		c.progress = fn
	}
}

func newBuildConfig(opts []Option) buildConfig {
	config := defaultBuildConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// finish runs the post-processing passes and freezes the table.
func (c *buildConfig) finish(b *Builder, source string) *Table {
	if c.lowercaseAliases {
		n := b.AliasLowercase()
		pixkit.Logger().Debug("glyph: added lowercase aliases", "source", source, "aliases", n)
	}
	t := b.Build()
	pixkit.Logger().Debug("glyph: built table", "source", source, "keys", t.Len())
	return t
}

// rasterizeAll renders chars into a table.
func rasterizeAll(r Rasterizer, f Font, chars []string, config buildConfig, source string) (*Table, error) {
	b := NewBuilder(len(chars))
	for i, ch := range chars {
		g, err := RasterizeGlyph(r, ch, f)
		if err != nil {
			return nil, err
		}
		b.Set(ch, g)
		if config.progress != nil {
			config.progress(i+1, len(chars))
		}
	}
	return config.finish(b, source), nil
}

// FromFont renders every character of sel with r.
func FromFont(r Rasterizer, f Font, sel Selection, opts ...Option) (*Table, error) {
	config := newBuildConfig(opts)

	chars, err := Flatten(sel)
	if err != nil {
		return nil, err
	}
	return rasterizeAll(r, f, chars, config, "font:"+f.Name)
}

// FromCodeRange renders every code point of cr with r.
func FromCodeRange(r Rasterizer, cr CodeRange, f Font, opts ...Option) (*Table, error) {
	config := newBuildConfig(opts)

	if err := cr.Validate(); err != nil {
		return nil, err
	}
	return rasterizeAll(r, f, cr.Chars(), config, fmt.Sprintf("range:%s[%d,%d)", f.Name, cr.Start, cr.Stop))
}

// FromSpritesheet assigns the sprites of sheet, in order, to the
// characters of sel.
//
// Unless disabled with WithLengthCheck(false), a selection whose length
// differs from sheet.Count fails with ErrSelectionCountMismatch before the
// sheet is sliced. Without the check, surplus characters or sprites are
// ignored.
func FromSpritesheet(s Slicer, sheet Sheet, sel Selection, opts ...Option) (*Table, error) {
	config := newBuildConfig(opts)

	chars, err := Flatten(sel)
	if err != nil {
		return nil, err
	}
	if config.checkLengths && len(chars) != sheet.Count {
		return nil, &CountMismatchError{Selection: len(chars), Count: sheet.Count}
	}

	images, err := s.Slice(sheet)
	if err != nil {
		return nil, fmt.Errorf("glyph: slice %s: %w", sheet.Path, err)
	}

	n := min(len(chars), len(images))
	if n != len(chars) || n != len(images) {
		pixkit.Logger().Warn("glyph: selection and sprites differ in length",
			"sheet", sheet.Path, "chars", len(chars), "sprites", len(images))
	}

	b := NewBuilder(n)
	for i := 0; i < n; i++ {
		b.Set(chars[i], &Glyph{
			Char:  chars[i],
			ID:    sheetGlyphID(sheet, i),
			Image: images[i],
		})
		if config.progress != nil {
			config.progress(i+1, n)
		}
	}
	return config.finish(b, "sheet:"+sheet.Path), nil
}
