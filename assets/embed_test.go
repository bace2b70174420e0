package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordListIntegrity(t *testing.T) {
	list, err := WordList()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	seen := make(map[string]struct{}, len(list))
	for _, w := range list {
		if _, dup := seen[w]; dup {
			t.Errorf("duplicate word in words.txt: %s", w)
		}
		seen[w] = struct{}{}

		assert.Len(t, w, 5, "word %q", w)
		for _, r := range w {
			assert.True(t, r >= 'a' && r <= 'z', "word %q has non a-z rune %q", w, r)
		}
	}
}
