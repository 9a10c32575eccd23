package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

var sentenceEnders = regexp.MustCompile(`[.!?]+`)

// cleanWord lowercases a token and strips everything except letters,
// digits, and internal apostrophes.
func cleanWord(word string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "'")
}

// extractWords splits text on whitespace and returns the cleaned,
// non-empty words.
func extractWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		if w := cleanWord(field); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// splitSentences splits on runs of sentence-terminal punctuation and
// drops blank fragments.
func splitSentences(text string) []string {
	parts := sentenceEnders.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// countSentences counts sentences, treating any non-blank text as at
// least one sentence.
func countSentences(text string) int {
	count := len(splitSentences(text))
	if count == 0 && strings.TrimSpace(text) != "" {
		count = 1
	}
	return count
}

// countSyllablesInWord estimates syllables by counting vowel-group
// transitions, with adjustments for a silent trailing "e" and for words
// ending in consonant + "le". Approximate, not dictionary-exact.
func countSyllablesInWord(word string) int {
	if len(word) == 0 {
		return 0
	}

	word = strings.ToLower(word)

	vowelGroups := 0
	prevWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevWasVowel {
			vowelGroups++
		}
		prevWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") {
		vowelGroups--
	}
	if strings.HasSuffix(word, "le") && len(word) > 2 {
		if !strings.ContainsRune("aeiouy", rune(word[len(word)-3])) {
			vowelGroups++
		}
	}

	if vowelGroups <= 0 {
		vowelGroups = 1
	}
	return vowelGroups
}

// countSyllables totals the syllable estimate over all words.
func countSyllables(words []string) int {
	total := 0
	for _, word := range words {
		total += countSyllablesInWord(word)
	}
	return total
}

// countLetters counts letters and digits only.
func countLetters(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// countPolysyllables counts words with three or more syllables.
func countPolysyllables(words []string) int {
	count := 0
	for _, word := range words {
		if countSyllablesInWord(word) >= 3 {
			count++
		}
	}
	return count
}

// fogSuffixes are the inflectional endings the Gunning Fog complex-word
// rule discounts.
var fogSuffixes = []string{"ing", "ed", "es"}

// isFogComplex reports whether a word counts as complex for Gunning Fog:
// three or more syllables, not counting syllables contributed by a
// common inflectional suffix.
func isFogComplex(word string) bool {
	if countSyllablesInWord(word) < 3 {
		return false
	}
	for _, suffix := range fogSuffixes {
		if strings.HasSuffix(word, suffix) && len(word) > len(suffix)+2 {
			if countSyllablesInWord(strings.TrimSuffix(word, suffix)) < 3 {
				return false
			}
		}
	}
	return true
}
