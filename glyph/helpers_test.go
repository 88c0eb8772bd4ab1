package glyph

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"
)

// fakeRasterizer renders every character as a solid w x h block in the
// font color and records the characters it was asked for.
type fakeRasterizer struct {
	w, h int

	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func newFakeRasterizer(w, h int) *fakeRasterizer {
	return &fakeRasterizer{w: w, h: h}
}

func (f *fakeRasterizer) Rasterize(char string, font Font) (image.Image, error) {
	f.mu.Lock()
	f.calls = append(f.calls, char)
	err := f.fail[char]
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, f.w, f.h))
	var c color.Color = color.White
	if font.Color != nil {
		c = font.Color
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img, nil
}

var errBackend = errors.New("backend exploded")

// gridSlicer returns count solid sprites whose red channel is the index.
type gridSlicer struct {
	calls int
	err   error
}

func (s *gridSlicer) Slice(sheet Sheet) ([]image.Image, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	images := make([]image.Image, sheet.Count)
	for i := range images {
		img := image.NewNRGBA(image.Rect(0, 0, sheet.SpriteWidth, sheet.SpriteHeight))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{R: uint8(i), A: 255}), image.Point{}, draw.Src)
		images[i] = img
	}
	return images, nil
}

var testFont = Font{Name: "test", Size: 16, Color: color.White}
