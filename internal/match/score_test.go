package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreByOverlap(t *testing.T) {
	t.Run("half of the description matches", func(t *testing.T) {
		// "python" matches, "sql" does not: round(100*1/2) = 50.
		assert.Equal(t, 50, ScoreByOverlap("I know python and java", "python sql"))
	})

	t.Run("empty description scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreByOverlap("anything at all", ""))
		assert.Equal(t, 0, ScoreByOverlap("", ""))
	})

	t.Run("empty candidate scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ScoreByOverlap("", "python sql"))
	})

	t.Run("description against itself scores 100", func(t *testing.T) {
		for _, d := range []string{"go", "python sql react", "Senior Backend Engineer, Go/Postgres"} {
			assert.Equal(t, 100, ScoreByOverlap(d, d), "description %q", d)
		}
	})

	t.Run("case and punctuation do not affect matches", func(t *testing.T) {
		candidate := "I know python and java"
		description := "python sql"
		base := ScoreByOverlap(candidate, description)
		assert.Equal(t, base, ScoreByOverlap(strings.ToUpper(candidate), description))
		assert.Equal(t, base, ScoreByOverlap("I know: PYTHON! (and Java)", description))
	})

	t.Run("duplicate tokens count individually", func(t *testing.T) {
		// Denominator 3, one match: round(100/3) = 33.
		assert.Equal(t, 33, ScoreByOverlap("python", "python sql sql"))
		// Two of three: round(200/3) = 67, rounding half-up.
		assert.Equal(t, 67, ScoreByOverlap("python sql", "python sql go"))
	})

	t.Run("result stays within bounds", func(t *testing.T) {
		inputs := []struct{ candidate, description string }{
			{"", ""},
			{"a", strings.Repeat("b ", 500)},
			{strings.Repeat("word ", 200), "word"},
			{"x y z", "x x x x x x x"},
		}
		for _, in := range inputs {
			got := ScoreByOverlap(in.candidate, in.description)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	})
}

func TestScoreByVocabulary(t *testing.T) {
	t.Run("counts keywords found in the identifier", func(t *testing.T) {
		assert.Equal(t, 2, ScoreByVocabulary("jane_python_sql_resume.pdf", DefaultVocabulary))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, 1, ScoreByVocabulary("JAVA-Developer.docx", []string{"java"}))
	})

	t.Run("no keywords no score", func(t *testing.T) {
		assert.Equal(t, 0, ScoreByVocabulary("resume-final-v2.pdf", DefaultVocabulary))
		assert.Equal(t, 0, ScoreByVocabulary("", DefaultVocabulary))
	})

	t.Run("bounded by vocabulary size", func(t *testing.T) {
		id := "java python react node sql javascript"
		assert.Equal(t, len(DefaultVocabulary), ScoreByVocabulary(id, DefaultVocabulary))
	})
}
