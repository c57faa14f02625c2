package tree

import (
	"fmt"
	"regexp"
	"strings"
)

// wordRune is the class of runes that belong to a word. Anything else,
// including '/', '-' and '.', is a word boundary.
const wordRune = `\p{L}\p{N}_`

// NewMatcher builds the predicate for a search box. A blank search returns a
// nil Predicate, which Filter treats as "no filter".
//
// With wholeWord set the needle must be preceded by the start of the text or a
// non-word rune, and followed by the end of the text or a non-word rune. The
// rule does not depend on what the needle itself starts or ends with.
func NewMatcher(search string, caseSensitive, wholeWord bool) (Predicate, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil, nil
	}

	if !wholeWord {
		if caseSensitive {
			return func(candidate string) bool {
				return strings.Contains(candidate, search)
			}, nil
		}
		needle := strings.ToLower(search)
		return func(candidate string) bool {
			return strings.Contains(strings.ToLower(candidate), needle)
		}, nil
	}

	pattern := `(?:^|[^` + wordRune + `])` + regexp.QuoteMeta(search) + `(?:$|[^` + wordRune + `])`
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search %q: %w", search, err)
	}
	return re.MatchString, nil
}
