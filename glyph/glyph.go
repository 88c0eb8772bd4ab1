package glyph

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
)

// Font selects a rendered font: a registered face name, a size in points
// and the fill color.
type Font struct {
	Name  string
	Size  float64
	Color color.Color
}

// Glyph is the image handle stored in a Table.
// The image belongs to the backend that produced it; a Glyph only
// references it.
type Glyph struct {
	// Char is the display unit this glyph was produced for.
	Char string

	// ID identifies the glyph deterministically. It never contains
	// control characters.
	ID string

	// Image holds the glyph pixels.
	Image image.Image
}

// Bounds returns the bounds of the glyph image.
func (g *Glyph) Bounds() image.Rectangle {
	if g == nil || g.Image == nil {
		return image.Rectangle{}
	}
	return g.Image.Bounds()
}

// Rasterizer renders a single display unit with a font.
// Errors such as a missing font are returned unchanged to the caller of
// RasterizeGlyph, wrapped with the character.
type Rasterizer interface {
	Rasterize(char string, f Font) (image.Image, error)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(char string, f Font) (image.Image, error)

// Rasterize implements Rasterizer.
func (fn RasterizerFunc) Rasterize(char string, f Font) (image.Image, error) {
	return fn(char, f)
}

// RasterizeGlyph renders char with r and tags the result with GlyphID.
// char must be exactly one display unit.
func RasterizeGlyph(r Rasterizer, char string, f Font) (*Glyph, error) {
	if n := unitCount(char); n != 1 {
		return nil, &GlyphInputError{Char: char, Units: n}
	}

	img, err := r.Rasterize(char, f)
	if err != nil {
		return nil, fmt.Errorf("glyph: rasterize %q with %s: %w", char, f.Name, err)
	}

	return &Glyph{
		Char:  char,
		ID:    GlyphID(f, char),
		Image: img,
	}, nil
}

// GlyphID returns the identifier of char rendered with f:
// "<name>-<size>-<code points>", where every code point is written in
// lowercase hex and multiple code points are joined by '_'.
//
// Code points are spelled out so control characters, including NUL,
// never end up in the identifier.
func GlyphID(f Font, char string) string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	sb.WriteByte('-')
	for i, r := range []rune(char) {
		if i > 0 {
			sb.WriteByte('_')
		}
		sb.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return sb.String()
}

// Sheet describes a fixed-grid spritesheet.
// Sprite i sits in column i%Columns and row i/Columns; Margin pixels
// separate neighboring sprites.
type Sheet struct {
	Path         string
	SpriteWidth  int
	SpriteHeight int
	Columns      int
	Count        int
	Margin       int
}

// Slicer cuts a spritesheet into Count images, in sprite order.
type Slicer interface {
	Slice(s Sheet) ([]image.Image, error)
}

// SlicerFunc adapts a function to the Slicer interface.
type SlicerFunc func(s Sheet) ([]image.Image, error)

// Slice implements Slicer.
func (fn SlicerFunc) Slice(s Sheet) ([]image.Image, error) {
	return fn(s)
}

// sheetGlyphID identifies sprite index of a sheet.
func sheetGlyphID(s Sheet, index int) string {
	return s.Path + "#" + strconv.Itoa(index)
}
