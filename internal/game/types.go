// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Verdict: per-letter result of a guess (hit/present/absent).
//   - ResetResult: whether a secret reset was applied or ignored.
//   - State: coarse lifecycle of a Game.
//   - Game: state for a single in-progress or finished game.

package game

import (
	"fmt"
	"sync"
)

// Verdict is the evaluation of a single guessed letter. The numeric values are
// the raw byte codes Score writes into the caller's buffer.
type Verdict byte

const (
	Absent  Verdict = 1 // letter does not contribute beyond the secret's frequency
	Present Verdict = 2 // letter is in the secret at another position
	Hit     Verdict = 4 // letter is in the same position in the secret
)

// String returns the lowercase name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Hit:
		return "hit"
	default:
		return fmt.Sprintf("verdict(%d)", byte(v))
	}
}

// MarshalText encodes the verdict by name so JSON payloads stay readable.
func (v Verdict) MarshalText() ([]byte, error) {
	switch v {
	case Absent, Present, Hit:
		return []byte(v.String()), nil
	}
	return nil, fmt.Errorf("game: invalid verdict %d", byte(v))
}

// UnmarshalText is the inverse of MarshalText.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch string(b) {
	case "absent":
		*v = Absent
	case "present":
		*v = Present
	case "hit":
		*v = Hit
	default:
		return fmt.Errorf("game: unknown verdict %q", b)
	}
	return nil
}

// ResetResult reports the outcome of Secret.Reset.
type ResetResult int

const (
	ResetIgnored ResetResult = iota // candidate rejected, previous secret kept
	ResetApplied                    // secret replaced
)

// Applied reports whether the reset replaced the secret.
func (r ResetResult) Applied() bool { return r == ResetApplied }

// State is the lifecycle of a Game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single Wordle game session.
// All exported methods are safe for concurrent use.
type Game struct {
	ID       string   // Unique game identifier (uuid).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of letters per word (always 5).
	Guesses  []string // Guesses made so far (lowercased).
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.

	mu     sync.Mutex
	secret *Secret
}
