package glyph

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gputypes"
)

// Atlas is a table packed into a single image, ready for upload as one
// texture. Aliased keys share the rectangle of their glyph.
type Atlas struct {
	Image *image.NRGBA
	Rects map[string]image.Rectangle

	// Cell is the size of one grid cell.
	Cell image.Point
}

// TextureDescriptor describes the GPU texture an Atlas is uploaded to.
type TextureDescriptor struct {
	Label  string
	Size   gputypes.Extent3D
	Format gputypes.TextureFormat
	Usage  gputypes.TextureUsage
}

// Atlas packs the distinct glyph images of t into a grid with the given
// number of columns. Each cell is as large as the largest glyph. A
// non-positive column count picks a roughly square grid.
func (t *Table) Atlas(columns int) *Atlas {
	var glyphs []*Glyph
	seen := make(map[*Glyph]bool, len(t.keys))
	cell := image.Point{}
	for _, k := range t.keys {
		g := t.glyphs[k]
		if g == nil || seen[g] {
			continue
		}
		seen[g] = true
		glyphs = append(glyphs, g)
		size := g.Bounds().Size()
		cell.X = max(cell.X, size.X)
		cell.Y = max(cell.Y, size.Y)
	}

	a := &Atlas{
		Rects: make(map[string]image.Rectangle, len(t.keys)),
		Cell:  cell,
	}
	if len(glyphs) == 0 {
		a.Image = image.NewNRGBA(image.Rect(0, 0, 0, 0))
		return a
	}

	if columns <= 0 {
		columns = int(math.Ceil(math.Sqrt(float64(len(glyphs)))))
	}
	columns = min(columns, len(glyphs))
	rows := (len(glyphs) + columns - 1) / columns
	a.Image = image.NewNRGBA(image.Rect(0, 0, columns*cell.X, rows*cell.Y))

	placed := make(map[*Glyph]image.Rectangle, len(glyphs))
	for i, g := range glyphs {
		origin := image.Pt((i%columns)*cell.X, (i/columns)*cell.Y)
		b := g.Bounds()
		r := image.Rectangle{Min: origin, Max: origin.Add(b.Size())}
		if g.Image != nil {
			draw.Draw(a.Image, r, g.Image, b.Min, draw.Src)
		}
		placed[g] = r
	}
	for _, k := range t.keys {
		if g := t.glyphs[k]; g != nil {
			a.Rects[k] = placed[g]
		}
	}
	return a
}

// Texture returns the descriptor for a sampled RGBA8 texture holding the
// atlas image.
func (a *Atlas) Texture(label string) TextureDescriptor {
	size := a.Image.Bounds().Size()
	return TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              uint32(size.X),
			Height:             uint32(size.Y),
			DepthOrArrayLayers: 1,
		},
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// UV returns the normalized texture coordinates of char's rectangle.
func (a *Atlas) UV(char string) (u0, v0, u1, v1 float32, ok bool) {
	r, ok := a.Rects[char]
	if !ok {
		return 0, 0, 0, 0, false
	}
	size := a.Image.Bounds().Size()
	w, h := float32(size.X), float32(size.Y)
	return float32(r.Min.X) / w, float32(r.Min.Y) / h, float32(r.Max.X) / w, float32(r.Max.Y) / h, true
}
