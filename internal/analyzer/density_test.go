package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claritext/claritext/pkg/tagger"
)

func annotateEnglish(t *testing.T, text string) *tagger.Annotation {
	t.Helper()
	capability := tagger.TryLoad("en", map[string]string{"en": tagger.ModelEnglishLexicon})
	require.True(t, capability.Available())

	ann, err := capability.Provider().Annotate(text)
	require.NoError(t, err)
	return ann
}

func TestComputeDensityPronounHeavyText(t *testing.T) {
	ann := annotateEnglish(t, "She gave him her book. It was his favorite.")
	metrics := computeDensity(ann)
	require.NotEmpty(t, metrics)

	// 9 content tokens, 5 of them pronouns (she, him, her, it, his).
	assert.Equal(t, 9, metrics["content_token_count"])
	assert.InDelta(t, 5.0/9.0, metrics["pronoun_density"].(float64), 1e-9)

	// All five personal pronouns carry Person/Number/Case features.
	assert.InDelta(t, 5.0/9.0, metrics["anaphora_density"].(float64), 1e-9)

	assert.Equal(t, 2, metrics["annotated_sentence_count"])
}

func TestComputeDensityDemonstrativeAnaphora(t *testing.T) {
	// "That" standing alone is anaphoric; "that cat" is not.
	alone := computeDensity(annotateEnglish(t, "That is unclear."))
	modifier := computeDensity(annotateEnglish(t, "That cat sat down."))

	assert.Greater(t, alone["anaphora_density"].(float64), 0.0)
	assert.InDelta(t, 0.0, modifier["anaphora_density"].(float64), 1e-9)
	assert.Greater(t, modifier["determiner_density"].(float64), 0.0)
}

func TestComputeDensityBounds(t *testing.T) {
	ann := annotateEnglish(t, "The quick brown fox jumps over the lazy dog. It barked at them.")
	metrics := computeDensity(ann)
	require.NotEmpty(t, metrics)

	for _, key := range []string{"pronoun_density", "determiner_density", "anaphora_density"} {
		value, ok := metrics[key].(float64)
		require.True(t, ok, key)
		assert.GreaterOrEqual(t, value, 0.0, key)
		assert.LessOrEqual(t, value, 1.0, key)
	}
}

func TestComputeDensityExcludesNonContentTokens(t *testing.T) {
	ann := annotateEnglish(t, "Stop! Wait... go?")
	metrics := computeDensity(ann)
	require.NotEmpty(t, metrics)

	assert.Equal(t, 3, metrics["content_token_count"])
}

func TestComputeDensityNoContent(t *testing.T) {
	assert.Empty(t, computeDensity(nil))
	assert.Empty(t, computeDensity(&tagger.Annotation{}))

	punctOnly := &tagger.Annotation{Tokens: []tagger.Token{
		{Text: "!", Tag: tagger.TagPunctuation},
		{Text: "$", Tag: tagger.TagSymbol},
	}}
	assert.Empty(t, computeDensity(punctOnly))
}
