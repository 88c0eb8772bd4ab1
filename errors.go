package pixkit

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for color parsing.
var (
	// ErrInvalidColorFormat is returned when a channel slice has neither
	// 3 nor 4 components.
	ErrInvalidColorFormat = errors.New("pixkit: color must have 3 or 4 channels")

	// ErrMalformedHexColor is returned when a hex color code has a digit
	// count other than 3, 4, 6 or 8, or contains non-hex characters.
	ErrMalformedHexColor = errors.New("pixkit: malformed hex color")

	// ErrIntOutsideRange is returned when a packed integer color does not
	// fit the expected number of bytes.
	ErrIntOutsideRange = errors.New("pixkit: integer color outside range")

	// ErrNormalizedOutsideRange is returned when a float channel lies
	// outside [0, 1].
	ErrNormalizedOutsideRange = errors.New("pixkit: normalized channel outside [0, 1]")
)

// ColorFormatError reports a channel slice of the wrong length.
type ColorFormatError struct {
	Channels int
}

func (e *ColorFormatError) Error() string {
	return "pixkit: color must have 3 or 4 channels, got " + strconv.Itoa(e.Channels)
}

// Unwrap returns ErrInvalidColorFormat.
func (e *ColorFormatError) Unwrap() error { return ErrInvalidColorFormat }

// HexColorError reports a hex color code that could not be parsed.
type HexColorError struct {
	Code string
}

func (e *HexColorError) Error() string {
	return "pixkit: malformed hex color " + strconv.Quote(e.Code)
}

// Unwrap returns ErrMalformedHexColor.
func (e *HexColorError) Unwrap() error { return ErrMalformedHexColor }

// IntRangeError reports a packed integer color above Max.
type IntRangeError struct {
	Value uint32
	Max   uint32
}

func (e *IntRangeError) Error() string {
	return fmt.Sprintf("pixkit: integer color %#x outside [0, %#x]", e.Value, e.Max)
}

// Unwrap returns ErrIntOutsideRange.
func (e *IntRangeError) Unwrap() error { return ErrIntOutsideRange }

// NormalizedRangeError reports a float channel outside [0, 1].
type NormalizedRangeError struct {
	Channel string
	Value   float64
}

func (e *NormalizedRangeError) Error() string {
	return fmt.Sprintf("pixkit: channel %s = %v outside [0, 1]", e.Channel, e.Value)
}

// Unwrap returns ErrNormalizedOutsideRange.
func (e *NormalizedRangeError) Unwrap() error { return ErrNormalizedOutsideRange }
