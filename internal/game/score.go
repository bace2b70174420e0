// internal/game/score.go
//
// Duplicate-aware Wordle scoring.
//
// Pass 1: count every letter of the guess.
// Pass 2: mark exact matches as Hit and claim them against the secret's
//         letter frequency.
// Pass 3: for each remaining position, mark Present if the letter sits at
//         another secret position and its claimed count is still below both
//         the secret frequency and the guess count; otherwise Absent.
//
// Hits are always claimed before any Present, so a repeated letter never
// receives more non-Absent verdicts than the secret holds.

package game

import "github.com/robalobadob/wordle/apps/scorer/internal/words"

// Score overwrites guess[0:min(length, 5)] in place with Verdict byte codes.
// Bytes at index 5 and beyond are left untouched. Score does not allocate.
func (s *Secret) Score(guess []byte, length int) {
	out, n := s.classify(guess, length)
	for i := 0; i < n; i++ {
		guess[i] = byte(out[i])
	}
}

// Evaluate scores guess without mutating it and returns one Verdict per
// position, up to 5.
func (s *Secret) Evaluate(guess string) []Verdict {
	out, n := s.classify([]byte(guess), len(guess))
	return append([]Verdict(nil), out[:n]...)
}

func (s *Secret) classify(guess []byte, length int) (out [words.Length]Verdict, n int) {
	length = max(0, min(length, len(guess)))
	n = min(length, words.Length)

	var guessCounts [26]int
	for _, b := range guess[:length] {
		if i, ok := letterIndex(b); ok {
			guessCounts[i]++
		}
	}

	var claimed [26]int
	for i := 0; i < n; i++ {
		if guess[i] != s.word[i] {
			continue
		}
		if li, ok := letterIndex(guess[i]); ok {
			out[i] = Hit
			claimed[li]++
		}
	}

	for i := 0; i < n; i++ {
		if out[i] == Hit {
			continue
		}
		out[i] = Absent
		li, ok := letterIndex(guess[i])
		if !ok || s.freq[li] == 0 {
			continue
		}
		if claimed[li] >= s.freq[li] || claimed[li] >= guessCounts[li] {
			continue
		}
		if s.occursElsewhere(guess[i], i) {
			out[i] = Present
			claimed[li]++
		}
	}
	return out, n
}

// occursElsewhere reports whether letter appears in the secret at a position
// other than i.
func (s *Secret) occursElsewhere(letter byte, i int) bool {
	for j, b := range s.word {
		if j != i && b == letter {
			return true
		}
	}
	return false
}
