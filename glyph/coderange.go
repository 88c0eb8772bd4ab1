package glyph

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// CodeRange is the half-open interval [Start, Stop) of code points.
type CodeRange struct {
	Start, Stop int
}

// Validate reports whether the range is usable: 0 <= Start < Stop.
func (cr CodeRange) Validate() error {
	if cr.Start < 0 {
		return fmt.Errorf("%w: start %d", ErrNegativeCodePoint, cr.Start)
	}
	if cr.Stop <= cr.Start {
		return fmt.Errorf("%w: [%d, %d)", ErrEmptyOrInvertedRange, cr.Start, cr.Stop)
	}
	if cr.Stop > utf8.MaxRune+1 {
		return fmt.Errorf("%w: stop %#x", ErrCodePointOutOfRange, cr.Stop)
	}
	return nil
}

// Len returns the number of code points in the range.
func (cr CodeRange) Len() int {
	if cr.Stop <= cr.Start {
		return 0
	}
	return cr.Stop - cr.Start
}

// Chars returns the characters of the range in order. Surrogate code
// points are skipped since they do not encode characters.
func (cr CodeRange) Chars() []string {
	chars := make([]string, 0, cr.Len())
	for cp := cr.Start; cp < cr.Stop; cp++ {
		if !utf8.ValidRune(rune(cp)) {
			continue
		}
		chars = append(chars, string(rune(cp)))
	}
	return chars
}

// ParseCodeRange converts a dynamically typed value, as produced by a YAML
// or JSON decoder, into a validated CodeRange. It accepts a two-element
// list [start, stop] or a mapping with "start" and "stop" keys.
func ParseCodeRange(v any) (CodeRange, error) {
	var start, stop any
	switch v := v.(type) {
	case CodeRange:
		if err := v.Validate(); err != nil {
			return CodeRange{}, err
		}
		return v, nil
	case []int:
		if len(v) != 2 {
			return CodeRange{}, fmt.Errorf("%w: want [start, stop], got %d values", ErrInvalidRangeType, len(v))
		}
		start, stop = v[0], v[1]
	case []any:
		if len(v) != 2 {
			return CodeRange{}, fmt.Errorf("%w: want [start, stop], got %d values", ErrInvalidRangeType, len(v))
		}
		start, stop = v[0], v[1]
	case map[string]any:
		start, stop = v["start"], v["stop"]
	default:
		return CodeRange{}, fmt.Errorf("%w: got %T", ErrInvalidRangeType, v)
	}

	s, ok := toInt(start)
	if !ok {
		return CodeRange{}, fmt.Errorf("%w: start is %T", ErrInvalidRangeType, start)
	}
	e, ok := toInt(stop)
	if !ok {
		return CodeRange{}, fmt.Errorf("%w: stop is %T", ErrInvalidRangeType, stop)
	}

	cr := CodeRange{Start: s, Stop: e}
	if err := cr.Validate(); err != nil {
		return CodeRange{}, err
	}
	return cr, nil
}

// toInt accepts every Go integer kind; floats are rejected even when
// integral. Values past the Unicode range are clamped so that Validate
// still reports them, whatever the width of int.
func toInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return clampSigned(int64(v)), true
	case int8:
		return clampSigned(int64(v)), true
	case int16:
		return clampSigned(int64(v)), true
	case int32:
		return clampSigned(int64(v)), true
	case int64:
		return clampSigned(v), true
	case uint:
		return clampUnsigned(uint64(v)), true
	case uint8:
		return clampUnsigned(uint64(v)), true
	case uint16:
		return clampUnsigned(uint64(v)), true
	case uint32:
		return clampUnsigned(uint64(v)), true
	case uint64:
		return clampUnsigned(v), true
	default:
		return 0, false
	}
}

// beyondUnicode is the smallest bound Validate rejects as out of range.
const beyondUnicode = utf8.MaxRune + 2

func clampSigned(v int64) int {
	return int(max(min(v, beyondUnicode), math.MinInt32))
}

func clampUnsigned(v uint64) int {
	return int(min(v, beyondUnicode))
}
