package pixkit

import (
	"fmt"
	"image/color"
	"strings"
)

// RGBA represents a non-premultiplied color with 8-bit red, green, blue,
// and alpha components.
type RGBA struct {
	R, G, B, A uint8
}

// FloatRGB holds the red, green and blue channels scaled to [0, 1].
type FloatRGB struct {
	R, G, B float64
}

// RGBA implements the color.Color interface.
// Returns alpha-premultiplied components in the range [0, 65535].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Channels returns the color as a 4-element channel slice.
func (c RGBA) Channels() []uint8 {
	return []uint8{c.R, c.G, c.B, c.A}
}

// Float returns the color channels scaled to [0, 1], dropping alpha.
func (c RGBA) Float() FloatRGB {
	return FloatRGB{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Normalized returns all four channels, alpha included, scaled to [0, 1].
func (c RGBA) Normalized() [4]float64 {
	return [4]float64{
		float64(c.R) / 255.0,
		float64(c.G) / 255.0,
		float64(c.B) / 255.0,
		float64(c.A) / 255.0,
	}
}

// Hex formats the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Lerp performs linear interpolation between two colors.
// t is clamped to [0, 1].
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(clamp255(float64(a) + (float64(b)-float64(a))*t + 0.5))
	}
	return RGBA{
		R: mix(c.R, other.R),
		G: mix(c.G, other.G),
		B: mix(c.B, other.B),
		A: mix(c.A, other.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	if c == nil {
		return RGBA{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromIntensity returns a gray with all color channels set to i.
func FromIntensity(i, a uint8) RGBA {
	return RGBA{R: i, G: i, B: i, A: a}
}

// maxUint24 is the largest packed 0xRRGGBB value.
const maxUint24 = 0xFFFFFF

// FromUint24 unpacks 0xRRGGBB with the given alpha. Values above
// 0xFFFFFF fail with ErrIntOutsideRange.
func FromUint24(c uint32, a uint8) (RGBA, error) {
	if c > maxUint24 {
		return RGBA{}, &IntRangeError{Value: c, Max: maxUint24}
	}
	return RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: a}, nil
}

// FromUint32 unpacks 0xRRGGBBAA.
func FromUint32(c uint32) RGBA {
	return RGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// FromNormalized converts float channels in [0, 1] to RGBA. Channels are
// scaled by 255 and truncated, so 0.5 becomes 127. A channel outside
// [0, 1], or NaN, fails with ErrNormalizedOutsideRange.
func FromNormalized(r, g, b, a float64) (RGBA, error) {
	channels := [4]struct {
		name  string
		value float64
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}}

	var out [4]uint8
	for i, ch := range channels {
		if !(ch.value >= 0 && ch.value <= 1) {
			return RGBA{}, &NormalizedRangeError{Channel: ch.name, Value: ch.value}
		}
		out[i] = uint8(255 * ch.value)
	}
	return RGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}

// NormalizeRGBA converts a 3- or 4-channel color to RGBA.
// A missing alpha channel becomes 255 (fully opaque).
func NormalizeRGBA(channels []uint8) (RGBA, error) {
	switch len(channels) {
	case 3:
		return RGBA{R: channels[0], G: channels[1], B: channels[2], A: 255}, nil
	case 4:
		return RGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
	default:
		return RGBA{}, &ColorFormatError{Channels: len(channels)}
	}
}

// NormalizeFloatRGB converts a 3- or 4-channel color to floating point
// red, green and blue in [0, 1]. Alpha, if present, is ignored.
func NormalizeFloatRGB(channels []uint8) (FloatRGB, error) {
	c, err := NormalizeRGBA(channels)
	if err != nil {
		return FloatRGB{}, err
	}
	return c.Float(), nil
}

// ParseHex parses a hex color code.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA". Any number of
// leading '#' characters is ignored. Shorthand forms duplicate every
// digit, so "f0a" is "ff00aa". Codes without alpha are fully opaque.
func ParseHex(code string) (RGBA, error) {
	hex := strings.TrimLeft(code, "#")

	var digits [8]uint8
	switch len(hex) {
	case 3, 4:
		for i := 0; i < len(hex); i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return RGBA{}, &HexColorError{Code: code}
			}
			digits[2*i], digits[2*i+1] = v, v
		}
		if len(hex) == 3 {
			digits[6], digits[7] = 0xf, 0xf
		}
	case 6, 8:
		for i := 0; i < len(hex); i++ {
			v, ok := hexDigit(hex[i])
			if !ok {
				return RGBA{}, &HexColorError{Code: code}
			}
			digits[i] = v
		}
		if len(hex) == 6 {
			digits[6], digits[7] = 0xf, 0xf
		}
	default:
		return RGBA{}, &HexColorError{Code: code}
	}

	return RGBA{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
		A: digits[6]<<4 | digits[7],
	}, nil
}

// MustHex is like ParseHex but panics if the code is malformed.
// Intended for package-level color tables.
func MustHex(code string) RGBA {
	c, err := ParseHex(code)
	if err != nil {
		panic(err)
	}
	return c
}

// hexDigit decodes a single hex digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
	Red         = RGBA{255, 0, 0, 255}
	Green       = RGBA{0, 255, 0, 255}
	Blue        = RGBA{0, 0, 255, 255}
	Yellow      = RGBA{255, 255, 0, 255}
	Magenta     = RGBA{255, 0, 255, 255}
	Transparent = RGBA{0, 0, 0, 0}
)
