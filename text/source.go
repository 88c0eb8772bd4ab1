package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file registered under a name.
// One FontSource serves faces at any size.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	name string
	data []byte
	otf  *opentype.Font

	// go-text font used for coverage queries, parsed on first use.
	gotextOnce sync.Once
	gotext     *gotext.Font

	coverage *coverageMap
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(name string, data []byte) (*FontSource, error) {
	if name == "" {
		return nil, ErrEmptyFontName
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font %s: %w", name, err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontSource{
		name:     name,
		data:     dataCopy,
		otf:      otf,
		coverage: newCoverageMap(),
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(name, path string) (*FontSource, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(name, data)
}

// Name returns the registered name.
func (s *FontSource) Name() string {
	return s.name
}

// Family returns the family name stored in the font, or "" when absent.
func (s *FontSource) Family() string {
	if family, err := s.otf.Name(nil, sfnt.NameIDFamily); err == nil {
		return family
	}
	return ""
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
// Results are cached per rune.
func (s *FontSource) HasGlyph(r rune) bool {
	if has, checked := s.coverage.get(r); checked {
		return has
	}
	has := s.lookupGlyph(r)
	s.coverage.set(r, has)
	return has
}

// Covers reports whether the font has a glyph for every rune of char.
func (s *FontSource) Covers(char string) bool {
	if char == "" {
		return false
	}
	for _, r := range char {
		if !s.HasGlyph(r) {
			return false
		}
	}
	return true
}

func (s *FontSource) lookupGlyph(r rune) bool {
	s.gotextOnce.Do(func() {
		face, err := gotext.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			logger().Debug("text: go-text parse failed, using sfnt cmap", "font", s.name, "error", err)
			return
		}
		s.gotext = face.Font
	})

	if s.gotext != nil {
		_, ok := s.gotext.NominalGlyph(r)
		return ok
	}

	var buf sfnt.Buffer
	idx, err := s.otf.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// newFace creates an x/image face at size points.
func (s *FontSource) newFace(size, dpi float64, hinting font.Hinting) (font.Face, error) {
	return opentype.NewFace(s.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: hinting,
	})
}
