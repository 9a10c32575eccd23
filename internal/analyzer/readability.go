package analyzer

import (
	"fmt"
	"math"
	"sort"
)

// linsearSampleSize caps the Linsear Write word sample.
const linsearSampleSize = 100

// computeReadability evaluates the classic readability formulas over the
// text. Degenerate inputs (no words or no sentences) produce an empty
// mapping; individual formulas never divide by zero.
func computeReadability(text string) map[string]any {
	words := extractWords(text)
	sentences := splitSentences(text)

	w := float64(len(words))
	st := float64(len(sentences))
	if w == 0 || st == 0 {
		return map[string]any{}
	}

	sy := float64(countSyllables(words))
	letters := float64(countLetters(text))
	poly := float64(countPolysyllables(words))
	difficult := float64(countDifficultWords(words))

	fogComplex := 0.0
	for _, word := range words {
		if isFogComplex(word) {
			fogComplex++
		}
	}

	out := map[string]any{
		"flesch_kincaid_grade":        0.39*(w/st) + 11.8*(sy/w) - 15.59,
		"flesch_reading_ease":         206.835 - 1.015*(w/st) - 84.6*(sy/w),
		"gunning_fog_index":           0.4 * ((w / st) + 100*(fogComplex/w)),
		"smog_index":                  3.1291 + 1.0430*math.Sqrt(30*poly/st),
		"automated_readability_index": 4.71*(letters/w) + 0.5*(w/st) - 21.43,
		"coleman_liau_index":          0.0588*(100*letters/w) - 0.296*(100*st/w) - 15.8,
		"dale_chall_score":            daleChallScore(w, st, difficult),
		"linsear_write_score":         linsearWrite(words, sentences),
		"difficult_word_count":        int(difficult),
	}
	out["text_standard"] = textStandard(out)
	return out
}

// computeBasicStats reports the raw counts the formulas are built on.
// character_count is the character length of the (already truncated)
// text; letter_count is letters and digits only.
func computeBasicStats(text string) map[string]any {
	words := extractWords(text)
	return map[string]any{
		"character_count":    len([]rune(text)),
		"letter_count":       countLetters(text),
		"syllable_count":     countSyllables(words),
		"word_count":         len(words),
		"sentence_count":     countSentences(text),
		"polysyllable_count": countPolysyllables(words),
	}
}

func daleChallScore(words, sentences, difficult float64) float64 {
	ratio := difficult / words
	score := 0.1579*(100*ratio) + 0.0496*(words/sentences)
	if ratio > 0.05 {
		score += 3.6365
	}
	return score
}

// linsearWrite scores up to the first 100 words: easy words (two or
// fewer syllables) count one point, hard words (three or more) count
// three. The point total per sample sentence is halved, minus one when
// the raw per-sentence score does not exceed 20.
func linsearWrite(words, sentences []string) float64 {
	sample := words
	if len(sample) > linsearSampleSize {
		sample = sample[:linsearSampleSize]
	}

	points := 0.0
	for _, word := range sample {
		if countSyllablesInWord(word) >= 3 {
			points += 3
		} else {
			points++
		}
	}

	sampleSentences := sentencesCovering(words, sentences, len(sample))
	score := points / float64(sampleSentences)
	if score > 20 {
		return score / 2
	}
	return score/2 - 1
}

// sentencesCovering estimates how many sentences the first sampleLen
// words span, proportionally to the full text, never below one.
func sentencesCovering(words, sentences []string, sampleLen int) int {
	if len(words) == 0 || len(sentences) == 0 {
		return 1
	}
	covered := int(math.Round(float64(len(sentences)) * float64(sampleLen) / float64(len(words))))
	if covered < 1 {
		covered = 1
	}
	return covered
}

// gradeFormulas lists the grade-scale metrics feeding the consensus.
var gradeFormulas = []string{
	"flesch_kincaid_grade",
	"gunning_fog_index",
	"smog_index",
	"automated_readability_index",
	"coleman_liau_index",
	"linsear_write_score",
}

// textStandard derives the consensus grade: each grade-scale formula
// votes for its rounded integer grade, and the most frequent grade wins.
// Ties break toward the lower grade, biasing the consensus toward the
// accessible reading of an ambiguous text.
func textStandard(metrics map[string]any) string {
	votes := make(map[int]int)
	for _, name := range gradeFormulas {
		value, ok := metrics[name].(float64)
		if !ok {
			continue
		}
		grade := int(math.Round(value))
		if grade < 0 {
			grade = 0
		}
		votes[grade]++
	}
	if len(votes) == 0 {
		return ""
	}

	grades := make([]int, 0, len(votes))
	for grade := range votes {
		grades = append(grades, grade)
	}
	sort.Ints(grades)

	best := grades[0]
	for _, grade := range grades[1:] {
		if votes[grade] > votes[best] {
			best = grade
		}
	}

	return fmt.Sprintf("%s and %s grade", ordinal(best), ordinal(best+1))
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
