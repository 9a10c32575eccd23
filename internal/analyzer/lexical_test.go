package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLexicalAllDistinct(t *testing.T) {
	metrics := computeLexical("alpha beta gamma delta")
	require.NotEmpty(t, metrics)

	assert.InDelta(t, 1.0, metrics["type_token_ratio"].(float64), 1e-9)
	assert.Equal(t, 4, metrics["unique_word_count"])
}

func TestComputeLexicalRepetitionLowersRatio(t *testing.T) {
	distinct := computeLexical("alpha beta gamma delta")
	repeated := computeLexical("alpha alpha alpha delta")

	assert.Less(t,
		repeated["type_token_ratio"].(float64),
		distinct["type_token_ratio"].(float64))
	assert.InDelta(t, 0.5, repeated["type_token_ratio"].(float64), 1e-9)
}

func TestComputeLexicalRatioMonotonicInDuplicates(t *testing.T) {
	// Holding total constant, each added duplicate lowers the ratio.
	prev := 2.0
	for dups := 0; dups <= 5; dups++ {
		tokens := make([]string, 0, 6)
		for i := 0; i < dups; i++ {
			tokens = append(tokens, "same")
		}
		for i := len(tokens); i < 6; i++ {
			tokens = append(tokens, string(rune('a'+i)))
		}
		metrics := computeLexical(strings.Join(tokens, " "))
		ratio := metrics["type_token_ratio"].(float64)

		assert.GreaterOrEqual(t, ratio, 0.0)
		assert.LessOrEqual(t, ratio, 1.0)
		if dups > 1 {
			assert.Less(t, ratio, prev)
		}
		prev = ratio
	}
}

func TestComputeLexicalCaseFolds(t *testing.T) {
	metrics := computeLexical("Word word WORD")
	assert.Equal(t, 1, metrics["unique_word_count"])
}

func TestComputeLexicalShortTextHasNoDiversityScore(t *testing.T) {
	metrics := computeLexical("only a few words here")
	assert.NotContains(t, metrics, "lexical_diversity_score")
}

func TestComputeLexicalWindowedDiversity(t *testing.T) {
	// 60 copies of one word: every window's ratio is 1/10.
	metrics := computeLexical(strings.Repeat("word ", 60))
	require.Contains(t, metrics, "lexical_diversity_score")
	assert.InDelta(t, 0.1, metrics["lexical_diversity_score"].(float64), 1e-9)

	// 55 distinct words: full windows score 1.0, the final partial
	// window of 5 also scores 1.0.
	var b strings.Builder
	for i := 0; i < 55; i++ {
		b.WriteString("w")
		b.WriteString(strings.Repeat("x", i))
		b.WriteString(" ")
	}
	distinct := computeLexical(b.String())
	assert.InDelta(t, 1.0, distinct["lexical_diversity_score"].(float64), 1e-9)
}

func TestComputeLexicalEmpty(t *testing.T) {
	assert.Empty(t, computeLexical(""))
	assert.Empty(t, computeLexical("   \n  "))
}
