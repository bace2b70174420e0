// internal/game/secret.go
//
// Secret is the per-session answer plus its letter frequency table.
//
// Invariants:
//   - The word is always a catalog entry (or the zero Word for an empty catalog).
//   - freq is recomputed in full whenever the word changes; it is never patched.
//
// A Secret has a single writer path (Reset) and is not safe for concurrent
// mutation. Independent sessions must own independent Secrets.

package game

import "github.com/robalobadob/wordle/apps/scorer/internal/words"

// LetterFrequency counts occurrences of 'a'..'z'.
type LetterFrequency [26]int

// Count returns the number of occurrences of letter, or 0 for non a–z bytes.
func (f LetterFrequency) Count(letter byte) int {
	if i, ok := letterIndex(letter); ok {
		return f[i]
	}
	return 0
}

// Total is the sum of all counts; 5 for any valid secret.
func (f LetterFrequency) Total() int {
	n := 0
	for _, c := range f {
		n += c
	}
	return n
}

// Secret is the word a player is trying to guess.
type Secret struct {
	catalog *words.Catalog
	word    words.Word
	freq    LetterFrequency
}

// NewSecret returns a Secret initialized to the catalog's first entry, so
// scoring is well defined before any Reset.
func NewSecret(catalog *words.Catalog) *Secret {
	s := &Secret{catalog: catalog}
	s.set(catalog.First())
	return s
}

// Reset replaces the secret with the catalog entry matching candidate[:length].
// Over-long or non-catalog candidates are ignored and the current secret stays
// active. Callers that do not care about the outcome may drop the result.
func (s *Secret) Reset(candidate []byte, length int) ResetResult {
	if length > words.Length {
		return ResetIgnored
	}
	w, ok := s.catalog.Lookup(candidate, length)
	if !ok {
		return ResetIgnored
	}
	s.set(w)
	return ResetApplied
}

// ResetString is Reset for a string candidate.
func (s *Secret) ResetString(candidate string) ResetResult {
	return s.Reset([]byte(candidate), len(candidate))
}

// Solution copies up to min(length, 5) bytes of the secret into out and
// returns the number of bytes written. out is neither terminated nor padded.
func (s *Secret) Solution(out []byte, length int) int {
	n := min(length, words.Length, len(out))
	if n <= 0 {
		return 0
	}
	return copy(out[:n], s.word[:n])
}

// Word returns the current secret.
func (s *Secret) Word() words.Word { return s.word }

// Frequency returns the letter frequency table of the current secret.
func (s *Secret) Frequency() LetterFrequency { return s.freq }

// set installs w and rebuilds the frequency table from scratch.
func (s *Secret) set(w words.Word) {
	s.word = w
	s.freq = LetterFrequency{}
	for _, b := range w {
		if i, ok := letterIndex(b); ok {
			s.freq[i]++
		}
	}
}

// Reveal returns the full secret for end-of-game display.
func Reveal(s *Secret) string {
	var buf [words.Length]byte
	n := s.Solution(buf[:], len(buf))
	return string(buf[:n])
}

// letterIndex maps 'a'..'z' to 0..25.
func letterIndex(b byte) (int, bool) {
	if b < 'a' || b > 'z' {
		return 0, false
	}
	return int(b - 'a'), true
}
