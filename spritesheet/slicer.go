package spritesheet

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/pixkit"
	"github.com/gogpu/pixkit/glyph"
)

// Slicing errors.
var (
	// ErrInvalidGeometry is returned when sprite size, columns or count
	// are not positive, or the margin is negative.
	ErrInvalidGeometry = errors.New("spritesheet: invalid sheet geometry")

	// ErrSpriteOutOfBounds is returned when a sprite extends past the
	// edge of the sheet image.
	ErrSpriteOutOfBounds = errors.New("spritesheet: sprite outside image")
)

// Slicer cuts spritesheet files into sprites. Decoded sheets are kept, so
// slicing the same file again does not decode it twice.
// It implements glyph.Slicer.
//
// Slicer is safe for concurrent use.
type Slicer struct {
	mu     sync.Mutex
	sheets map[string]image.Image
	load   func(path string) (image.Image, error)
}

var _ glyph.Slicer = (*Slicer)(nil)

// NewSlicer creates a Slicer that decodes files with Load.
func NewSlicer() *Slicer {
	return &Slicer{
		sheets: make(map[string]image.Image),
		load:   Load,
	}
}

// Slice implements glyph.Slicer.
func (s *Slicer) Slice(sheet glyph.Sheet) ([]image.Image, error) {
	if err := validate(sheet); err != nil {
		return nil, err
	}
	img, err := s.image(sheet.Path)
	if err != nil {
		return nil, err
	}
	return SliceImage(img, sheet)
}

// Forget drops the decoded image of path, if any.
func (s *Slicer) Forget(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sheets, path)
}

func (s *Slicer) image(path string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if img, ok := s.sheets[path]; ok {
		return img, nil
	}
	img, err := s.load(path)
	if err != nil {
		return nil, err
	}
	pixkit.Logger().Debug("spritesheet: decoded sheet", "path", path, "size", img.Bounds().Size())
	s.sheets[path] = img
	return img, nil
}

// SpriteRect returns the rectangle of sprite index, relative to the
// sheet origin.
func SpriteRect(sheet glyph.Sheet, index int) image.Rectangle {
	col := index % sheet.Columns
	row := index / sheet.Columns
	x := (sheet.SpriteWidth + sheet.Margin) * col
	y := (sheet.SpriteHeight + sheet.Margin) * row
	return image.Rect(x, y, x+sheet.SpriteWidth, y+sheet.SpriteHeight)
}

// SliceImage cuts img into sheet.Count sprites. Each sprite is copied into
// its own image with bounds starting at (0, 0).
func SliceImage(img image.Image, sheet glyph.Sheet) ([]image.Image, error) {
	if err := validate(sheet); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	sprites := make([]image.Image, sheet.Count)
	for i := range sprites {
		r := SpriteRect(sheet, i).Add(bounds.Min)
		if !r.In(bounds) {
			return nil, fmt.Errorf("%w: sprite %d at %v, image %v", ErrSpriteOutOfBounds, i, r, bounds)
		}
		sprite := image.NewNRGBA(image.Rect(0, 0, sheet.SpriteWidth, sheet.SpriteHeight))
		draw.Draw(sprite, sprite.Bounds(), img, r.Min, draw.Src)
		sprites[i] = sprite
	}
	return sprites, nil
}

func validate(sheet glyph.Sheet) error {
	switch {
	case sheet.SpriteWidth <= 0 || sheet.SpriteHeight <= 0:
		return fmt.Errorf("%w: sprite size %dx%d", ErrInvalidGeometry, sheet.SpriteWidth, sheet.SpriteHeight)
	case sheet.Columns <= 0:
		return fmt.Errorf("%w: %d columns", ErrInvalidGeometry, sheet.Columns)
	case sheet.Count <= 0:
		return fmt.Errorf("%w: %d sprites", ErrInvalidGeometry, sheet.Count)
	case sheet.Margin < 0:
		return fmt.Errorf("%w: margin %d", ErrInvalidGeometry, sheet.Margin)
	}
	return nil
}
