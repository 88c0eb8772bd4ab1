// Package text renders single characters with TrueType and OpenType fonts.
//
// It is the font backend of package glyph: a Rasterizer resolves the font
// name of a glyph.Font through a Registry and draws the character with
// golang.org/x/image/font.
//
//   - FontSource: a parsed font file, shared across sizes
//   - Registry: fonts by name, starting with the Go fonts
//   - Rasterizer: draws one display unit per call, caching open faces
//
// # Example usage
//
//	reg := text.NewRegistry()
//	if err := reg.RegisterFile("pixel", "fonts/pixel.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//
//	r := text.NewRasterizer(reg)
//	table, err := glyph.FromCodeRange(r, glyph.CodeRange{Start: 32, Stop: 127},
//	    glyph.Font{Name: "pixel", Size: 12, Color: pixkit.White})
//
// Glyph coverage is answered with github.com/go-text/typesetting, so
// FontSource.HasGlyph reports what the font's cmap actually maps.
package text
