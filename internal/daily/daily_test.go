package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/scorer/internal/words"
)

func TestDateKey_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 10, 20, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-19", DateKey(ts))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	i := WordIndex(day, "salt", 100)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)
	assert.Equal(t, i, WordIndex(later, "salt", 100), "same day, same index")
	assert.Equal(t, 0, WordIndex(day, "salt", 0))
	assert.Equal(t, 0, WordIndex(day, "salt", -3))
}

func TestWordIndex_VariesAcrossDaysAndSalts(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[WordIndex(start.AddDate(0, 0, d), "salt", 1000)] = true
	}
	assert.Greater(t, len(seen), 20)

	differ := false
	for d := 0; d < 10 && !differ; d++ {
		day := start.AddDate(0, 0, d)
		differ = WordIndex(day, "a", 1000) != WordIndex(day, "b", 1000)
	}
	assert.True(t, differ)
}

func TestPick(t *testing.T) {
	c := words.NewCatalog([]string{"crane", "spate", "store"})
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	w := Pick(c, day, "salt")
	assert.True(t, c.Contains(w[:], len(w)))
	assert.Equal(t, c.At(WordIndex(day, "salt", 3)), w)
	assert.Equal(t, words.Word{}, Pick(words.NewCatalog(nil), day, "salt"))
}
