package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when a font name is not registered.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidSize is returned when a font size is not positive.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrEmptyFontName is returned when registering a font without a name.
	ErrEmptyFontName = errors.New("text: empty font name")
)
