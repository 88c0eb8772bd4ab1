package text

import (
	"sync"

	"github.com/gogpu/pixkit/glyph"
)

// DefaultFont is the font of the table returned by DefaultGlyphs.
var DefaultFont = glyph.Font{Name: FontGoRegular, Size: 16}

// DefaultRange covers ASCII and Latin-1, control characters included,
// since some fonts ship glyphs for them.
var DefaultRange = glyph.CodeRange{Start: 0, Stop: 256}

var defaultGlyphs = sync.OnceValues(func() (*glyph.Table, error) {
	r := NewRasterizer(NewRegistry())
	t, err := glyph.FromCodeRange(r, DefaultRange, DefaultFont)
	if err != nil {
		return nil, err
	}
	logger().Info("text: built default glyph table", "font", DefaultFont.Name, "size", DefaultFont.Size, "glyphs", t.Len())
	return t, nil
})

// DefaultGlyphs returns a process-wide glyph table of code points 0 to 255
// in Go Regular 16pt white. The table is built on the first call and shared
// by all callers afterwards; it must be treated as read-only.
func DefaultGlyphs() (*glyph.Table, error) {
	return defaultGlyphs()
}
