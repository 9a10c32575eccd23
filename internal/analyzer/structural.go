package analyzer

import (
	"regexp"
	"strings"
)

var (
	headingPattern  = regexp.MustCompile(`(?m)^#{1,3}\s`)
	listItemPattern = regexp.MustCompile(`(?m)^[ \t]*(?:[-*•]|\d+[.)])\s`)
)

// computeStructural measures document structure: paragraphs, headings,
// and list items. A text with no sentences yields an empty mapping.
func computeStructural(text string) map[string]any {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return map[string]any{}
	}

	paragraphs := 0
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			paragraphs++
		}
	}

	avgParagraphWords := 0.0
	if paragraphs > 0 {
		avgParagraphWords = float64(len(strings.Fields(text))) / float64(paragraphs)
	}

	return map[string]any{
		"paragraph_count":                paragraphs,
		"paragraph_sentence_ratio":       float64(paragraphs) / float64(len(sentences)),
		"has_headings":                   headingPattern.MatchString(text),
		"has_lists":                      listItemPattern.MatchString(text),
		"list_item_count":                len(listItemPattern.FindAllString(text, -1)),
		"average_paragraph_length_words": avgParagraphWords,
	}
}
