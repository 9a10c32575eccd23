package analyzer

import "strings"

const (
	// diversityMinTokens is the minimum token count for the windowed
	// diversity approximation to be meaningful.
	diversityMinTokens = 50

	// diversityWindowSize is the fixed window the token stream is
	// partitioned into.
	diversityWindowSize = 10
)

// computeLexical measures vocabulary variety: type-token ratio, unique
// word count, and for longer texts a windowed diversity score that is
// less sensitive to text length than the raw ratio.
func computeLexical(text string) map[string]any {
	tokens := make([]string, 0)
	for _, field := range strings.Fields(text) {
		tokens = append(tokens, strings.ToLower(field))
	}
	if len(tokens) == 0 {
		return map[string]any{}
	}

	unique := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		unique[token] = true
	}

	total := float64(len(tokens))
	ratio := float64(len(unique)) / total

	out := map[string]any{
		"type_token_ratio":  ratio,
		"unique_word_count": len(unique),
		"unique_word_ratio": ratio,
	}

	if len(tokens) >= diversityMinTokens {
		out["lexical_diversity_score"] = windowedDiversity(tokens)
	}
	return out
}

// windowedDiversity partitions the token sequence into consecutive
// fixed-size windows (final partial window included), computes each
// window's type-token ratio, and returns the mean.
func windowedDiversity(tokens []string) float64 {
	sum := 0.0
	windows := 0

	for start := 0; start < len(tokens); start += diversityWindowSize {
		end := start + diversityWindowSize
		if end > len(tokens) {
			end = len(tokens)
		}
		window := tokens[start:end]

		seen := make(map[string]bool, len(window))
		for _, token := range window {
			seen[token] = true
		}
		sum += float64(len(seen)) / float64(len(window))
		windows++
	}

	return sum / float64(windows)
}
