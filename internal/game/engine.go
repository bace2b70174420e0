// internal/game/engine.go
//
// Game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with their own Secret (6x5 by default).
//   - Validate and apply guesses (length, alphabetic, catalog membership).
//   - Track state transitions: playing → won/lost.
//   - Reveal the secret once the game is over.
//
// Notes:
//   - Scoring lives in score.go and is shared with the stateless API.
//   - Answers are chosen from the words.Catalog handed to New.

package game

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/scorer/internal/words"
)

const (
	DefaultRows = 6
	defaultCols = words.Length
)

var (
	ErrGameFinished  = errors.New("game finished")
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrNotInWordList = errors.New("not in word list")
	ErrEmptyCatalog  = errors.New("catalog has no words")
	ErrInvalidAnswer = errors.New("answer not in word list")
)

// Options tunes a new game. Zero values pick defaults.
type Options struct {
	Answer string // fixed answer; random catalog word when empty
	Rows   int    // max guesses; DefaultRows when <= 0
}

// New constructs a new game instance over catalog.
func New(catalog *words.Catalog, opts Options) (*Game, error) {
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	secret := NewSecret(catalog)
	if opts.Answer != "" {
		if !secret.ResetString(strings.ToLower(strings.TrimSpace(opts.Answer))).Applied() {
			return nil, ErrInvalidAnswer
		}
	} else {
		w := RandomWord(catalog)
		secret.Reset(w[:], len(w))
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Game{
		ID:      uuid.NewString(),
		Rows:    rows,
		Cols:    defaultCols,
		Guesses: []string{},
		secret:  secret,
	}, nil
}

// RandomWord returns a cryptographically random catalog word.
// Falls back to the first entry if the random source fails.
func RandomWord(catalog *words.Catalog) words.Word {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(catalog.Len())))
	if err != nil {
		return catalog.First()
	}
	return catalog.At(int(n.Int64()))
}

// ApplyGuess validates and scores a guess, mutating the game state.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters and alphabetic a–z.
//   - Guess must be present in the catalog.
//
// State transitions:
//   - If all tiles are Hit → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) ([]Verdict, State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Finished {
		return nil, g.state(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.state(), ErrInvalidGuess
	}
	if !g.secret.catalog.ContainsString(guess) {
		return nil, g.state(), ErrNotInWordList
	}

	marks := g.secret.Evaluate(guess)
	g.Guesses = append(g.Guesses, guess)

	if allHit(marks) {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return marks, g.state(), nil
}

// Reset swaps the secret for word and restarts the board. Rejected words leave
// the game untouched.
func (g *Game) Reset(word string) ResetResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	word = strings.ToLower(strings.TrimSpace(word))
	res := g.secret.ResetString(word)
	if res.Applied() {
		g.Guesses = []string{}
		g.Finished, g.Won = false, false
	}
	return res
}

// Solution reveals the secret once the game is finished.
func (g *Game) Solution() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.Finished {
		return "", false
	}
	return Reveal(g.secret), true
}

// History returns a copy of the guesses made so far.
func (g *Game) History() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string{}, g.Guesses...)
}

// State reports the current lifecycle state.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allHit returns true if all marks are Hit.
func allHit(m []Verdict) bool {
	for _, x := range m {
		if x != Hit {
			return false
		}
	}
	return len(m) > 0
}
