// internal/words/words.go
//
// Loads the word catalog used by the game engine.
//
// Sources, in order of preference:
//   1. The file named by the caller (normally WORDS_FILE), one word per line.
//   2. The embedded default list from the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); anything else is skipped.
//   • Lists are normalized to lowercase.
//   • Blank lines and lines starting with '#' are ignored.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/scorer/assets"
)

// ErrEmptyCatalog is returned when no valid words could be loaded.
var ErrEmptyCatalog = errors.New("words: catalog is empty")

// Load builds a Catalog from path, or from the embedded list when path is empty.
func Load(path string) (*Catalog, error) {
	var (
		list   []string
		err    error
		source = "embedded"
	)
	if path != "" {
		source = path
		list, err = readWordFile(path)
	} else {
		list, err = assets.WordList()
	}
	if err != nil {
		return nil, fmt.Errorf("load words from %s: %w", source, err)
	}

	c := NewCatalog(list)
	if c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	log.Info().Str("source", source).Int("words", c.Len()).Int("skipped", len(list)-c.Len()).Msg("word catalog loaded")
	return c, nil
}

// readWordFile loads one word per line from a file.
// Normalization and filtering happen in NewCatalog.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
