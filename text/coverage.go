package text

import "sync"

// coverageMap is a memory-efficient map from rune to bool.
// Uses 2 bits per rune: (checked, hasGlyph).
//
// Each block covers 256 runes (512 bits = 64 bytes) and is allocated on
// demand, which keeps sparse lookups across the Unicode space cheap.
//
// coverageMap is safe for concurrent use.
type coverageMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*coverageBlock // Keyed by rune >> 8
}

// coverageBlock holds 256 runes, 2 bits each.
type coverageBlock struct {
	bits [8]uint64
}

func newCoverageMap() *coverageMap {
	return &coverageMap{blocks: make(map[uint32]*coverageBlock)}
}

// get returns (hasGlyph, checked).
func (m *coverageMap) get(r rune) (hasGlyph, checked bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[uint32(r)>>8]
	if !ok {
		return false, false
	}
	word, pos := bitPosition(r)
	w := b.bits[word]
	return (w>>(pos+1))&1 != 0, (w>>pos)&1 != 0
}

// set records hasGlyph for r and marks it checked.
func (m *coverageMap) set(r rune, hasGlyph bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := uint32(r) >> 8
	b, ok := m.blocks[idx]
	if !ok {
		b = &coverageBlock{}
		m.blocks[idx] = b
	}
	word, pos := bitPosition(r)
	b.bits[word] |= 1 << pos
	if hasGlyph {
		b.bits[word] |= 1 << (pos + 1)
	} else {
		b.bits[word] &^= 1 << (pos + 1)
	}
}

func bitPosition(r rune) (word, pos uint32) {
	bitIdx := (uint32(r) & 0xFF) * 2
	return bitIdx / 64, bitIdx % 64
}
