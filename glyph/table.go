package glyph

import (
	"iter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table maps characters to glyphs. A Table is immutable and safe for
// concurrent use; iteration follows insertion order.
type Table struct {
	glyphs map[string]*Glyph
	keys   []string
}

// Lookup returns the glyph for char.
func (t *Table) Lookup(char string) (*Glyph, bool) {
	g, ok := t.glyphs[char]
	return g, ok
}

// Len returns the number of keys, aliases included.
func (t *Table) Len() int {
	return len(t.keys)
}

// Keys returns an iterator over the characters in insertion order.
func (t *Table) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range t.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over (character, glyph) pairs in insertion order.
func (t *Table) All() iter.Seq2[string, *Glyph] {
	return func(yield func(string, *Glyph) bool) {
		for _, k := range t.keys {
			if !yield(k, t.glyphs[k]) {
				return
			}
		}
	}
}

// Builder accumulates glyphs for a Table.
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	glyphs map[string]*Glyph
	keys   []string
}

// NewBuilder returns a Builder with room for n glyphs.
func NewBuilder(n int) *Builder {
	return &Builder{
		glyphs: make(map[string]*Glyph, n),
		keys:   make([]string, 0, n),
	}
}

// Set maps char to g. Setting an existing key replaces its glyph and keeps
// its position.
func (b *Builder) Set(char string, g *Glyph) {
	if b.glyphs == nil {
		b.glyphs = make(map[string]*Glyph)
	}
	if _, ok := b.glyphs[char]; !ok {
		b.keys = append(b.keys, char)
	}
	b.glyphs[char] = g
}

// Has reports whether char has been set.
func (b *Builder) Has(char string) bool {
	_, ok := b.glyphs[char]
	return ok
}

// Len returns the number of keys set so far.
func (b *Builder) Len() int {
	return len(b.keys)
}

// AliasLowercase maps the lowercase form of every uppercase key to the
// same glyph. Keys that already exist are not replaced. It returns the
// number of aliases added.
func (b *Builder) AliasLowercase() int {
	lower := cases.Lower(language.Und)
	added := 0

	// Only keys present before the pass are candidates.
	n := len(b.keys)
	for i := 0; i < n; i++ {
		key := b.keys[i]
		lc := lower.String(key)
		if lc == key || unitCount(lc) != 1 || b.Has(lc) {
			continue
		}
		b.Set(lc, b.glyphs[key])
		added++
	}
	return added
}

// Build returns the Table and resets the Builder.
func (b *Builder) Build() *Table {
	t := &Table{glyphs: b.glyphs, keys: b.keys}
	if t.glyphs == nil {
		t.glyphs = map[string]*Glyph{}
	}
	b.glyphs, b.keys = nil, nil
	return t
}
