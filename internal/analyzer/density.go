package analyzer

import "github.com/claritext/claritext/pkg/tagger"

// computeDensity derives referential-load metrics from a tagged token
// stream. High pronoun and anaphora density forces the reader to track
// antecedents, which is the load the accessibility report flags.
// Content tokens exclude punctuation, whitespace, and symbols; a stream
// with no content tokens yields an empty mapping.
func computeDensity(ann *tagger.Annotation) map[string]any {
	if ann == nil {
		return map[string]any{}
	}

	content := 0
	pronouns := 0
	determiners := 0
	anaphora := 0

	for _, tok := range ann.Tokens {
		switch tok.Tag {
		case tagger.TagPunctuation, tagger.TagSpace, tagger.TagSymbol:
			continue
		}
		content++

		switch tok.Tag {
		case tagger.TagPronoun:
			pronouns++
			if tok.HasMorph("Person", "Number", "Case") {
				anaphora++
			}
		case tagger.TagDeterminer:
			determiners++
			if tok.Dep != tagger.DepDeterminer && tok.Morph["PronType"] == "Dem" {
				anaphora++
			}
		}
	}

	if content == 0 {
		return map[string]any{}
	}

	total := float64(content)
	return map[string]any{
		"pronoun_density":          float64(pronouns) / total,
		"determiner_density":       float64(determiners) / total,
		"anaphora_density":         float64(anaphora) / total,
		"content_token_count":      content,
		"annotated_sentence_count": ann.SentenceCount,
	}
}
