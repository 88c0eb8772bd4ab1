// Package glyph builds glyph tables: immutable maps from a character to
// the image that draws it.
//
// A table is filled from one of three sources:
//
//   - FromFont: every character of a Selection is rendered by a Rasterizer
//   - FromSpritesheet: the sprites cut by a Slicer are assigned, in order,
//     to the characters of a Selection
//   - FromCodeRange: every code point of a CodeRange is rendered by a
//     Rasterizer
//
// Characters are display units (grapheme clusters), so "e" followed by a
// combining accent is one key.
//
// # Selections
//
// A Selection is one of Single, List or Rows. Values decoded from YAML or
// JSON are converted with ParseSelection, which rejects every other shape:
//
//	sel, err := glyph.ParseSelection(doc["selection"])
//	if err != nil {
//	    return err
//	}
//	chars, err := glyph.Flatten(sel)
//
// # Lowercase aliases
//
// Fonts that ship only capitals can serve lowercase text with
// WithLowercaseAliases: after the table is filled, every uppercase key
// gains a lowercase twin pointing at the same Glyph. Lowercase entries
// that already exist are left alone.
package glyph
