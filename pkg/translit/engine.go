// Package translit renders Unicode strings as ASCII approximations
// using lazily loaded, codepoint-block-indexed replacement tables.
// The mapping is lossy by design: unmapped characters are dropped,
// never surfaced as errors.
package translit

import (
	"strings"
	"sync"
)

const (
	// maxCodepoint is the last codepoint the engine attempts to map.
	// Private-Use-Area planes and above are dropped outright.
	maxCodepoint = 0xEFFFF

	// Unknown is the table sentinel for "no ASCII equivalent"; the
	// original character is emitted padded with spaces instead.
	Unknown = "[?]"
)

// Engine maps Unicode strings to ASCII using per-block tables served
// by a Source. Each Engine owns an independent cache that starts
// empty, grows monotonically on first access to each block, and is
// never evicted. Safe for concurrent use; a race between two loads of
// the same block writes identical data twice, which is accepted over
// the cost of a per-block lock.
type Engine struct {
	source Source

	mu    sync.RWMutex
	cache map[int][]string // section -> table; nil marks "no table"
}

// NewEngine builds an engine over source with an empty cache.
func NewEngine(source Source) *Engine {
	return &Engine{source: source, cache: make(map[int][]string)}
}

// Transliterate renders s as ASCII. Codepoints below 0x80 pass
// through; codepoints above maxCodepoint are dropped; everything else
// is looked up in the block table for codepoint>>8 at position
// codepoint%256. A missing table, an out-of-bounds position, or an
// empty entry drops the character; the Unknown sentinel re-emits the
// original character padded with spaces. Output length is unrelated
// to input length.
func (e *Engine) Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if r > maxCodepoint {
			continue
		}
		table := e.block(int(r) >> 8)
		pos := int(r) % 256
		if table == nil || pos >= len(table) {
			continue
		}
		entry := table[pos]
		if entry == Unknown {
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
			continue
		}
		b.WriteString(entry)
	}
	return b.String()
}

// block returns the table for section, loading it on first access.
// A failed load is cached as nil so the section is never retried.
func (e *Engine) block(section int) []string {
	e.mu.RLock()
	table, ok := e.cache[section]
	e.mu.RUnlock()
	if ok {
		return table
	}

	table, err := e.source.Block(section)
	if err != nil {
		table = nil
	}
	e.mu.Lock()
	e.cache[section] = table
	e.mu.Unlock()
	return table
}

// Stats describes the cache state: sections with a loaded table and
// sections cached as having none.
type Stats struct {
	Loaded  int `json:"loaded"`
	Missing int `json:"missing"`
}

// CacheStats reports the current cache population.
func (e *Engine) CacheStats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var st Stats
	for _, table := range e.cache {
		if table == nil {
			st.Missing++
		} else {
			st.Loaded++
		}
	}
	return st
}
