package search

import (
	"errors"
	"regexp"
	"strings"
)

var ErrEmptyTerm = errors.New("empty search term")

// Compile builds a case-insensitive alternation of the words in term, the
// way `grep -iE 'one|two'` treats them. Words are regular expression
// fragments; a word that does not compile on its own is matched literally.
// No word boundaries are added.
func Compile(term string) (*regexp.Regexp, error) {
	words := strings.Fields(term)
	if len(words) == 0 {
		return nil, ErrEmptyTerm
	}
	alts := make([]string, 0, len(words))
	for _, w := range words {
		if _, err := regexp.Compile(w); err != nil {
			w = regexp.QuoteMeta(w)
		}
		alts = append(alts, "(?:"+w+")")
	}
	return regexp.Compile("(?i)" + strings.Join(alts, "|"))
}
