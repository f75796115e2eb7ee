// Package tokenizer normalizes free text into the token sequence used for
// similarity scoring.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// nonWordRegex matches any character that is not a Unicode word character
// (letter, digit, underscore) or whitespace. Matched runs are replaced with a
// single space before splitting.
var nonWordRegex = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// minTokenRunes is the minimum token length kept after splitting. Shorter
// tokens ("a", "it", "of") carry no discriminative signal.
const minTokenRunes = 3

// stopWords is the fixed set of English function words excluded from scoring.
// Words shorter than minTokenRunes are already removed by the length filter
// and are not listed here.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "but": {}, "nor": {}, "yet": {},
	"for": {}, "with": {}, "from": {}, "into": {}, "over": {},
	"under": {}, "about": {}, "through": {}, "during": {}, "between": {},
	"are": {}, "was": {}, "were": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "shall": {}, "should": {},
	"can": {}, "could": {}, "may": {}, "might": {}, "must": {},
	"this": {}, "that": {}, "these": {}, "those": {},
}

// Normalize converts a string into the ordered sequence of tokens used for
// scoring: non-word characters become spaces, the text is lowercased and
// split on whitespace runs, then tokens shorter than three runes and stop
// words are dropped. Empty or punctuation-only input yields an empty slice.
//
// No stemming is applied: "running" and "run" are distinct tokens.
func Normalize(text string) []string {
	cleaned := nonWordRegex.ReplaceAllString(text, " ")
	lowered := strings.ToLower(cleaned)

	tokens := make([]string, 0) // Initialize as empty slice, not nil
	for _, token := range strings.Fields(lowered) {
		if utf8.RuneCountInString(token) < minTokenRunes {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// IsStopWord reports whether the given (lowercase) token is in the fixed
// stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
