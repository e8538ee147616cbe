package match

import (
	"math"
	"strings"
)

// DefaultVocabulary is the closed keyword set scored against a resume
// identifier when no parsed resume content is available.
var DefaultVocabulary = []string{"java", "python", "react", "node", "sql", "javascript"}

// ScoreByVocabulary counts vocabulary terms appearing as substrings of the
// normalized identifier, yielding an integer in 0..len(vocabulary). This is
// a deliberately weak proxy for content matching (an identifier such as a
// filename says little about the resume) and must not be confused with
// ScoreByOverlap.
func ScoreByVocabulary(identifier string, vocabulary []string) int {
	normalized := Normalize(identifier)
	score := 0
	for _, keyword := range vocabulary {
		term := Normalize(keyword)
		if term == "" {
			continue
		}
		if strings.Contains(normalized, term) {
			score++
		}
	}
	return score
}

// ScoreByOverlap scores candidate text against a job description: every
// description token (duplicates counted individually) that appears as a
// substring of the normalized candidate text is a match, and the result is
// round(100 * matches / totalTokens), half-up, always in [0,100]. A
// description with no tokens scores 0 by convention rather than dividing by
// zero.
func ScoreByOverlap(candidateText, jobDescription string) int {
	tokens := Tokens(jobDescription)
	if len(tokens) == 0 {
		return 0
	}
	candidate := Normalize(candidateText)
	matches := 0
	for _, token := range tokens {
		if strings.Contains(candidate, token) {
			matches++
		}
	}
	return int(math.Floor(float64(matches)/float64(len(tokens))*100 + 0.5))
}
