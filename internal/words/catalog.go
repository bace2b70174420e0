// internal/words/catalog.go
//
// Immutable, sorted catalog of valid five-letter words.
//
// Responsibilities:
//   - Normalize a raw word list (lowercase, trim, a–z only, length 5).
//   - Keep entries sorted and deduplicated for binary-search membership.
//   - Hand out catalog-owned Word values so callers never alias their buffers.
//
// A Catalog is never mutated after NewCatalog returns, so it can be shared by
// any number of goroutines without locking.

package words

import (
	"bytes"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Length is the number of letters in every catalog word.
const Length = 5

// Word is a fixed-length lowercase ASCII word.
type Word [Length]byte

// String returns the word as a Go string.
func (w Word) String() string { return string(w[:]) }

// Catalog is a sorted, deduplicated set of Words.
type Catalog struct {
	entries []Word
}

// NewCatalog builds a catalog from list. Entries that are not exactly five
// a–z letters after trimming and lowercasing are dropped.
func NewCatalog(list []string) *Catalog {
	normalized := lo.Map(list, func(w string, _ int) string {
		return strings.ToLower(strings.TrimSpace(w))
	})
	valid := lo.Uniq(lo.Filter(normalized, func(w string, _ int) bool {
		return len(w) == Length && isAlpha(w)
	}))
	slices.Sort(valid)

	entries := make([]Word, len(valid))
	for i, w := range valid {
		copy(entries[i][:], w)
	}
	return &Catalog{entries: entries}
}

// Contains reports whether the first length bytes of candidate form a catalog
// word. Any length other than Length is rejected without searching.
func (c *Catalog) Contains(candidate []byte, length int) bool {
	_, ok := c.Lookup(candidate, length)
	return ok
}

// Lookup returns the catalog's own copy of candidate, if present.
func (c *Catalog) Lookup(candidate []byte, length int) (Word, bool) {
	if length != Length || len(candidate) < Length {
		return Word{}, false
	}
	key := candidate[:Length]
	i, found := slices.BinarySearchFunc(c.entries, key, func(e Word, k []byte) int {
		return bytes.Compare(e[:], k)
	})
	if !found {
		return Word{}, false
	}
	return c.entries[i], true
}

// ContainsString is a convenience wrapper around Contains.
func (c *Catalog) ContainsString(w string) bool {
	return c.Contains([]byte(w), len(w))
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns the i-th word in sorted order.
func (c *Catalog) At(i int) Word { return c.entries[i] }

// First returns the lexicographically smallest word, or the zero Word when the
// catalog is empty.
func (c *Catalog) First() Word {
	if len(c.entries) == 0 {
		return Word{}
	}
	return c.entries[0]
}

// Words returns a copy of the catalog as strings, in sorted order.
func (c *Catalog) Words() []string {
	return lo.Map(c.entries, func(w Word, _ int) string { return w.String() })
}
