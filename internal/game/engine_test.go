package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/scorer/internal/words"
)

func TestNew_FixedAnswer(t *testing.T) {
	g, err := New(testCatalog(t), Options{Answer: " SPATE "})
	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, DefaultRows, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, "spate", Reveal(g.secret))
}

func TestNew_RandomAnswerIsCatalogWord(t *testing.T) {
	c := testCatalog(t)
	for i := 0; i < 20; i++ {
		g, err := New(c, Options{})
		require.NoError(t, err)
		w := g.secret.Word()
		assert.True(t, c.Contains(w[:], len(w)))
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := New(words.NewCatalog(nil), Options{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New(testCatalog(t), Options{Answer: "zzzzz"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestApplyGuess_Win(t *testing.T) {
	g, err := New(testCatalog(t), Options{Answer: "spate"})
	require.NoError(t, err)

	_, ok := g.Solution()
	assert.False(t, ok, "solution hidden while playing")

	marks, state, err := g.ApplyGuess("petty")
	require.NoError(t, err)
	assert.Equal(t, []Verdict{Present, Present, Absent, Hit, Absent}, marks)
	assert.Equal(t, StatePlaying, state)

	marks, state, err = g.ApplyGuess("SPATE")
	require.NoError(t, err)
	assert.Equal(t, []Verdict{Hit, Hit, Hit, Hit, Hit}, marks)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, []string{"petty", "spate"}, g.Guesses)

	sol, ok := g.Solution()
	assert.True(t, ok)
	assert.Equal(t, "spate", sol)

	_, state, err = g.ApplyGuess("store")
	assert.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, StateWon, state)
}

func TestApplyGuess_Loss(t *testing.T) {
	g, err := New(testCatalog(t), Options{Answer: "spate", Rows: 2})
	require.NoError(t, err)

	_, state, err := g.ApplyGuess("droid")
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)

	_, state, err = g.ApplyGuess("tapes")
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuess_Validation(t *testing.T) {
	g, err := New(testCatalog(t), Options{Answer: "spate"})
	require.NoError(t, err)

	cases := []struct {
		guess string
		want  error
	}{
		{"spat", ErrInvalidGuess},
		{"spates", ErrInvalidGuess},
		{"sp4te", ErrInvalidGuess},
		{"aabbc", ErrNotInWordList},
	}
	for _, tc := range cases {
		_, state, err := g.ApplyGuess(tc.guess)
		assert.ErrorIs(t, err, tc.want, "guess %q", tc.guess)
		assert.Equal(t, StatePlaying, state)
	}
	assert.Empty(t, g.Guesses)
}

func TestGameReset(t *testing.T) {
	g, err := New(testCatalog(t), Options{Answer: "spate", Rows: 1})
	require.NoError(t, err)
	_, state, err := g.ApplyGuess("store")
	require.NoError(t, err)
	require.Equal(t, StateLost, state)

	assert.Equal(t, ResetIgnored, g.Reset("aabbc"))
	assert.Equal(t, StateLost, g.State())

	assert.Equal(t, ResetApplied, g.Reset("Store"))
	assert.Equal(t, StatePlaying, g.State())
	assert.Empty(t, g.Guesses)

	_, state, err = g.ApplyGuess("store")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
}

func TestGames_HaveIndependentSecrets(t *testing.T) {
	c := testCatalog(t)
	a, err := New(c, Options{Answer: "spate"})
	require.NoError(t, err)
	b, err := New(c, Options{Answer: "store"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); a.secret.Evaluate("tapes") }()
		go func() { defer wg.Done(); b.secret.Evaluate("tapes") }()
	}
	wg.Wait()

	assert.Equal(t, "spate", Reveal(a.secret))
	assert.Equal(t, "store", Reveal(b.secret))
	assert.NotEqual(t, a.ID, b.ID)
}
