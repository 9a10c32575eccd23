package analyzer

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const simpleProse = "The cat sat on the mat. The dog ran to the barn. The sun is hot."

const denseProse = "The epidemiological investigation demonstrated considerable heterogeneity " +
	"in pharmaceutical interventions across metropolitan populations, necessitating " +
	"sophisticated statistical methodology for comprehensive interpretation."

func TestComputeReadabilitySimpleProse(t *testing.T) {
	metrics := computeReadability(simpleProse)
	require.NotEmpty(t, metrics)

	fk, ok := metrics["flesch_kincaid_grade"].(float64)
	require.True(t, ok)
	assert.Less(t, fk, 3.0, "repetitive single-syllable prose should grade very low")

	ease, ok := metrics["flesch_reading_ease"].(float64)
	require.True(t, ok)
	assert.Greater(t, ease, 80.0)

	assert.Equal(t, 0, metrics["difficult_word_count"])
}

func TestComputeReadabilityDenseProse(t *testing.T) {
	simple := computeReadability(simpleProse)
	dense := computeReadability(denseProse)
	require.NotEmpty(t, dense)

	assert.Greater(t,
		dense["flesch_kincaid_grade"].(float64),
		simple["flesch_kincaid_grade"].(float64),
		"dense scientific prose must grade higher than simple prose")

	assert.Less(t,
		dense["flesch_reading_ease"].(float64),
		simple["flesch_reading_ease"].(float64))

	assert.Greater(t, dense["difficult_word_count"].(int), 3)
	assert.Greater(t, dense["gunning_fog_index"].(float64), 10.0)
	assert.Greater(t, dense["smog_index"].(float64), 3.1291)
}

func TestComputeReadabilityAllMetricsPresent(t *testing.T) {
	metrics := computeReadability(simpleProse)

	for _, key := range []string{
		"flesch_kincaid_grade",
		"flesch_reading_ease",
		"gunning_fog_index",
		"smog_index",
		"automated_readability_index",
		"coleman_liau_index",
		"dale_chall_score",
		"linsear_write_score",
		"difficult_word_count",
		"text_standard",
	} {
		assert.Contains(t, metrics, key)
	}
}

func TestComputeReadabilityDegenerateInputs(t *testing.T) {
	assert.Empty(t, computeReadability(""))
	assert.Empty(t, computeReadability("   \n\t  "))
	assert.Empty(t, computeReadability("... !!! ???"))
}

func TestComputeBasicStats(t *testing.T) {
	stats := computeBasicStats("The cat sat. It purred.")

	assert.Equal(t, 23, stats["character_count"])
	assert.Equal(t, 2, stats["sentence_count"])
	assert.Equal(t, 5, stats["word_count"])
	assert.Equal(t, 17, stats["letter_count"])
}

func TestDaleChallPenalty(t *testing.T) {
	// All words easy: no penalty term.
	easy := daleChallScore(20, 2, 0)
	assert.InDelta(t, 0.0496*10, easy, 1e-9)

	// Above the 5% difficult ratio the constant penalty applies.
	hard := daleChallScore(20, 2, 2)
	assert.InDelta(t, 0.1579*10+0.0496*10+3.6365, hard, 1e-9)
}

func TestLinsearWriteAdjustment(t *testing.T) {
	// One short easy sentence: raw score under 20, so minus one applies.
	words := []string{"the", "cat", "sat", "on", "the", "mat"}
	sentences := []string{"the cat sat on the mat"}
	score := linsearWrite(words, sentences)
	assert.InDelta(t, 6.0/1/2-1, score, 1e-9)
}

func TestTextStandardFormat(t *testing.T) {
	metrics := computeReadability(simpleProse)
	standard, ok := metrics["text_standard"].(string)
	require.True(t, ok)
	assert.Regexp(t, regexp.MustCompile(`^\d+(st|nd|rd|th) and \d+(st|nd|rd|th) grade$`), standard)
}

func TestTextStandardTieBreaksLow(t *testing.T) {
	// Two formulas, two different grades, one vote each: the lower
	// grade must win.
	standard := textStandard(map[string]any{
		"flesch_kincaid_grade": 3.2,
		"gunning_fog_index":    5.1,
	})
	assert.Equal(t, "3rd and 4th grade", standard)
}

func TestTextStandardMode(t *testing.T) {
	standard := textStandard(map[string]any{
		"flesch_kincaid_grade":        7.8,
		"gunning_fog_index":           8.1,
		"smog_index":                  8.4,
		"automated_readability_index": 12.0,
	})
	assert.Equal(t, "8th and 9th grade", standard)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		0: "0th", 1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd",
	}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}
