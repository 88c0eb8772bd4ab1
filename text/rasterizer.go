package text

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/pixkit/glyph"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceKey identifies an open face in the face cache. Keying on the
// source means a font re-registered under the same name gets new faces.
type faceKey struct {
	src  *FontSource
	size float64
}

// Rasterizer renders single characters with registered fonts.
// It implements glyph.Rasterizer.
//
// Every glyph image is one line tall with the baseline at the font ascent,
// so glyphs of the same face line up when drawn side by side. The width
// covers both the advance and any ink outside it.
//
// Rasterizer is safe for concurrent use.
type Rasterizer struct {
	registry *Registry
	config   rasterConfig
	faces    *Cache[faceKey, font.Face]

	// font.Face is not safe for concurrent use.
	mu sync.Mutex
}

var _ glyph.Rasterizer = (*Rasterizer)(nil)

// NewRasterizer creates a Rasterizer resolving font names with reg.
func NewRasterizer(reg *Registry, opts ...RasterizerOption) *Rasterizer {
	config := defaultRasterConfig()
	for _, opt := range opts {
		opt(&config)
	}

	faces := NewCache[faceKey, font.Face](config.faceCacheLimit)
	faces.OnEvict(func(_ faceKey, f font.Face) { _ = f.Close() })

	return &Rasterizer{
		registry: reg,
		config:   config,
		faces:    faces,
	}
}

// Registry returns the registry used to resolve font names.
func (r *Rasterizer) Registry() *Registry {
	return r.registry
}

// Rasterize implements glyph.Rasterizer.
// A nil font color renders white. Characters missing from the font are
// drawn with the font's fallback glyph.
func (r *Rasterizer) Rasterize(char string, f glyph.Font) (image.Image, error) {
	if f.Size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, f.Size)
	}
	src, err := r.registry.Lookup(f.Name)
	if err != nil {
		return nil, err
	}

	face, err := r.faces.GetOrCreate(faceKey{src: src, size: f.Size}, func() (font.Face, error) {
		logger().Debug("text: opening face", "font", f.Name, "size", f.Size)
		return src.newFace(f.Size, r.config.dpi, mapHinting(r.config.hinting))
	})
	if err != nil {
		return nil, fmt.Errorf("text: open face %s at %v: %w", f.Name, f.Size, err)
	}

	if !src.Covers(char) {
		logger().Debug("text: glyph missing from font", "font", f.Name, "char", fmt.Sprintf("%U", []rune(char)))
	}

	var col color.Color = color.White
	if f.Color != nil {
		col = f.Color
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return drawUnit(face, char, col), nil
}

// drawUnit draws s onto a transparent image sized to one line.
func drawUnit(face font.Face, s string, col color.Color) *image.NRGBA {
	bounds, advance := font.BoundString(face, s)
	metrics := face.Metrics()

	minX := min(bounds.Min.X, 0).Floor()
	maxX := max(bounds.Max.X, advance).Ceil()
	width := max(maxX-minX, 1)
	height := max((metrics.Ascent + metrics.Descent).Ceil(), 1)

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(-minX), Y: metrics.Ascent},
	}
	d.DrawString(s)
	return img
}
