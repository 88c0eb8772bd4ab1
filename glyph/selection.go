package glyph

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Selection is an ordered set of characters, one per glyph slot.
// It is implemented by Single, List and Rows only.
type Selection interface {
	parts() []string
}

// Single is a selection written as one string.
type Single string

// List is a selection written as several strings that are concatenated.
type List []string

// Rows is a selection written one string per spritesheet row. It flattens
// exactly like List.
type Rows []string

func (s Single) parts() []string { return []string{string(s)} }
func (l List) parts() []string   { return l }
func (r Rows) parts() []string   { return r }

// Flatten concatenates the strings of a selection, in order, and splits
// the result into display units.
func Flatten(sel Selection) ([]string, error) {
	if sel == nil {
		return nil, ErrInvalidSelectionType
	}

	parts := sel.parts()
	if len(parts) == 0 || parts[0] == "" {
		return nil, ErrEmptySelection
	}

	chars := splitUnits(strings.Join(parts, ""))
	if len(chars) == 0 {
		return nil, ErrEmptySelection
	}
	return chars, nil
}

// ParseSelection converts a dynamically typed value, as produced by a YAML
// or JSON decoder, into a Selection.
//
// Accepted shapes:
//   - string: Single
//   - []string or []any of strings: List
//   - map with a single "rows" key holding a list of strings: Rows
//   - a value that already is a Selection
func ParseSelection(v any) (Selection, error) {
	switch v := v.(type) {
	case Single, List, Rows:
		return v.(Selection), nil
	case string:
		return Single(v), nil
	case []string:
		return List(v), nil
	case []any:
		strs, err := stringElements(v)
		if err != nil {
			return nil, err
		}
		return List(strs), nil
	case map[string]any:
		rows, ok := v["rows"]
		if !ok || len(v) != 1 {
			return nil, fmt.Errorf("%w: mapping without a single \"rows\" key", ErrInvalidSelectionType)
		}
		switch rows := rows.(type) {
		case []string:
			return Rows(rows), nil
		case []any:
			strs, err := stringElements(rows)
			if err != nil {
				return nil, err
			}
			return Rows(strs), nil
		default:
			return nil, fmt.Errorf("%w: rows is %T", ErrInvalidSelectionType, rows)
		}
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidSelectionType, v)
	}
}

func stringElements(items []any) ([]string, error) {
	strs := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, &ElementError{Index: i, Value: item}
		}
		strs[i] = s
	}
	return strs, nil
}

// splitUnits splits s into grapheme clusters.
func splitUnits(s string) []string {
	var units []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		units = append(units, g.Str())
	}
	return units
}

// unitCount returns the number of display units in s.
func unitCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
