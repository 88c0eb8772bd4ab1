package glyph

import (
	"errors"
	"fmt"
)

// Sentinel errors for glyph package.
var (
	// ErrInvalidSelectionType is returned when a selection is not a
	// string, a list of strings or a set of rows.
	ErrInvalidSelectionType = errors.New("glyph: selection must be a string, a list of strings or rows")

	// ErrEmptySelection is returned when a selection, or its first
	// element, has no characters.
	ErrEmptySelection = errors.New("glyph: empty selection")

	// ErrNonStringElement is returned when a list selection contains a
	// value that is not a string.
	ErrNonStringElement = errors.New("glyph: selection element is not a string")

	// ErrInvalidGlyphInput is returned when a rasterization target is not
	// exactly one display unit.
	ErrInvalidGlyphInput = errors.New("glyph: input must be exactly one character")

	// ErrSelectionCountMismatch is returned when a spritesheet selection
	// does not have one character per sprite.
	ErrSelectionCountMismatch = errors.New("glyph: selection length does not match sprite count")

	// ErrInvalidRangeType is returned when code range bounds are not integers.
	ErrInvalidRangeType = errors.New("glyph: code range bounds must be integers")

	// ErrNegativeCodePoint is returned when a code range starts below zero.
	ErrNegativeCodePoint = errors.New("glyph: code range starts below zero")

	// ErrEmptyOrInvertedRange is returned when a code range stop is not
	// greater than its start.
	ErrEmptyOrInvertedRange = errors.New("glyph: code range is empty or inverted")

	// ErrCodePointOutOfRange is returned when a code range extends past
	// the last Unicode code point.
	ErrCodePointOutOfRange = errors.New("glyph: code point beyond U+10FFFF")
)

// ElementError reports a non-string element in a list selection.
type ElementError struct {
	Index int
	Value any
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("glyph: selection element %d is %T, not a string", e.Index, e.Value)
}

// Unwrap returns ErrNonStringElement.
func (e *ElementError) Unwrap() error { return ErrNonStringElement }

// GlyphInputError reports a rasterization target that is not one character.
type GlyphInputError struct {
	Char  string
	Units int
}

func (e *GlyphInputError) Error() string {
	return fmt.Sprintf("glyph: %q is %d characters, want exactly one", e.Char, e.Units)
}

// Unwrap returns ErrInvalidGlyphInput.
func (e *GlyphInputError) Unwrap() error { return ErrInvalidGlyphInput }

// CountMismatchError reports a selection whose length differs from the
// number of sprites in a sheet.
type CountMismatchError struct {
	Selection int
	Count     int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("glyph: selection has %d characters but the sheet has %d sprites", e.Selection, e.Count)
}

// Unwrap returns ErrSelectionCountMismatch.
func (e *CountMismatchError) Unwrap() error { return ErrSelectionCountMismatch }
