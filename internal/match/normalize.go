package match

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lower-cases text and collapses every non-alphanumeric run into a
// single space. The same normalization is applied to both sides of every
// comparison so case and punctuation never affect a match.
func Normalize(text string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(text), " "))
}

// Tokens splits text on non-alphanumeric boundaries after normalization,
// dropping empty tokens. Duplicates are preserved. Total: any input,
// including empty, yields a possibly-empty token list.
func Tokens(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Fields(normalized)
}
