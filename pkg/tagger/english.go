package tagger

import (
	"regexp"
	"strings"
	"unicode"
)

// ModelEnglishLexicon identifies the built-in English tagger. It covers
// the closed word classes (pronouns, determiners) with a fixed lexicon;
// open-class words are tagged Other, which is all the density metrics
// need.
const ModelEnglishLexicon = "en-core-lexicon"

// englishProvider is a lexicon-based tagger for English. It is stateless
// after construction and safe for concurrent Annotate calls.
type englishProvider struct {
	pronouns     map[string]map[string]string
	determiners  map[string]map[string]string
	linkingVerbs map[string]bool
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

func newEnglishProvider() *englishProvider {
	return &englishProvider{
		pronouns:     englishPronouns(),
		determiners:  englishDeterminers(),
		linkingVerbs: englishLinkingVerbs(),
	}
}

// Annotate tokenizes the text and tags each token. Whitespace runs that
// contain a blank line are emitted as SPACE tokens, matching the
// convention of treating paragraph breaks as visible tokens.
func (p *englishProvider) Annotate(text string) (*Annotation, error) {
	words := tokenize(text)
	tokens := make([]Token, 0, len(words))

	for i, word := range words {
		tokens = append(tokens, p.tagWord(word, nextWord(words, i)))
	}

	return &Annotation{
		Tokens:        tokens,
		SentenceCount: countSentences(text),
	}, nil
}

func (p *englishProvider) tagWord(word, next string) Token {
	lower := strings.ToLower(word)

	if isSpace(word) {
		return Token{Text: word, Tag: TagSpace}
	}
	if isPunct(word) {
		return Token{Text: word, Tag: TagPunctuation}
	}
	if isSymbol(word) {
		return Token{Text: word, Tag: TagSymbol}
	}

	if morph, ok := p.pronouns[lower]; ok {
		return Token{Text: word, Tag: TagPronoun, Dep: "nsubj", Morph: morph}
	}

	if morph, ok := p.determiners[lower]; ok {
		dep := DepDeterminer
		// A demonstrative with no following noun phrase stands alone as
		// a pronominal subject: "That is unclear" vs "that cat".
		if morph["PronType"] == "Dem" && p.standsAlone(next) {
			dep = "nsubj"
		}
		return Token{Text: word, Tag: TagDeterminer, Dep: dep, Morph: morph}
	}

	return Token{Text: word, Tag: TagOther}
}

// standsAlone reports whether the token following a demonstrative fails
// to start a noun phrase.
func (p *englishProvider) standsAlone(next string) bool {
	if next == "" {
		return true
	}
	if isPunct(next) || isSymbol(next) {
		return true
	}
	return p.linkingVerbs[strings.ToLower(next)]
}

// tokenize splits text into word, punctuation-run, and blank-line tokens.
func tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'':
			word.WriteRune(r)
		case unicode.IsSpace(r):
			flush()
			// Fold a whitespace run into a single SPACE token when it
			// spans a paragraph break; plain separators are dropped.
			j := i
			newlines := 0
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				if runes[j] == '\n' {
					newlines++
				}
				j++
			}
			if newlines >= 2 {
				tokens = append(tokens, string(runes[i:j]))
			}
			i = j - 1
		default:
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

func nextWord(words []string, i int) string {
	for j := i + 1; j < len(words); j++ {
		if !isSpace(words[j]) {
			return words[j]
		}
	}
	return ""
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isPunct(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) {
			return false
		}
	}
	return len(s) > 0
}

func isSymbol(s string) bool {
	for _, r := range s {
		if !unicode.IsSymbol(r) {
			return false
		}
	}
	return len(s) > 0
}

func countSentences(text string) int {
	count := 0
	for _, part := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 && strings.TrimSpace(text) != "" {
		count = 1
	}
	return count
}

// englishPronouns maps each pronoun to its morphological features. The
// feature sets follow the Universal Dependencies conventions for English:
// personal and possessive pronouns carry Person/Number/Case, reflexives
// Person/Number, indefinites Number only.
func englishPronouns() map[string]map[string]string {
	return map[string]map[string]string{
		// Personal, nominative
		"i":    {"Person": "1", "Number": "Sing", "Case": "Nom", "PronType": "Prs"},
		"we":   {"Person": "1", "Number": "Plur", "Case": "Nom", "PronType": "Prs"},
		"you":  {"Person": "2", "Case": "Nom", "PronType": "Prs"},
		"he":   {"Person": "3", "Number": "Sing", "Case": "Nom", "PronType": "Prs"},
		"she":  {"Person": "3", "Number": "Sing", "Case": "Nom", "PronType": "Prs"},
		"it":   {"Person": "3", "Number": "Sing", "Case": "Nom", "PronType": "Prs"},
		"they": {"Person": "3", "Number": "Plur", "Case": "Nom", "PronType": "Prs"},

		// Personal, accusative
		"me":   {"Person": "1", "Number": "Sing", "Case": "Acc", "PronType": "Prs"},
		"us":   {"Person": "1", "Number": "Plur", "Case": "Acc", "PronType": "Prs"},
		"him":  {"Person": "3", "Number": "Sing", "Case": "Acc", "PronType": "Prs"},
		"them": {"Person": "3", "Number": "Plur", "Case": "Acc", "PronType": "Prs"},

		// Possessive
		"my":     {"Person": "1", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"your":   {"Person": "2", "Poss": "Yes", "PronType": "Prs"},
		"his":    {"Person": "3", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"her":    {"Person": "3", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"its":    {"Person": "3", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"our":    {"Person": "1", "Number": "Plur", "Poss": "Yes", "PronType": "Prs"},
		"their":  {"Person": "3", "Number": "Plur", "Poss": "Yes", "PronType": "Prs"},
		"mine":   {"Person": "1", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"yours":  {"Person": "2", "Poss": "Yes", "PronType": "Prs"},
		"hers":   {"Person": "3", "Number": "Sing", "Poss": "Yes", "PronType": "Prs"},
		"ours":   {"Person": "1", "Number": "Plur", "Poss": "Yes", "PronType": "Prs"},
		"theirs": {"Person": "3", "Number": "Plur", "Poss": "Yes", "PronType": "Prs"},

		// Reflexive
		"myself":     {"Person": "1", "Number": "Sing", "PronType": "Prs"},
		"yourself":   {"Person": "2", "Number": "Sing", "PronType": "Prs"},
		"himself":    {"Person": "3", "Number": "Sing", "PronType": "Prs"},
		"herself":    {"Person": "3", "Number": "Sing", "PronType": "Prs"},
		"itself":     {"Person": "3", "Number": "Sing", "PronType": "Prs"},
		"ourselves":  {"Person": "1", "Number": "Plur", "PronType": "Prs"},
		"yourselves": {"Person": "2", "Number": "Plur", "PronType": "Prs"},
		"themselves": {"Person": "3", "Number": "Plur", "PronType": "Prs"},

		// Indefinite
		"anyone":     {"Number": "Sing", "PronType": "Ind"},
		"anybody":    {"Number": "Sing", "PronType": "Ind"},
		"anything":   {"Number": "Sing", "PronType": "Ind"},
		"someone":    {"Number": "Sing", "PronType": "Ind"},
		"somebody":   {"Number": "Sing", "PronType": "Ind"},
		"something":  {"Number": "Sing", "PronType": "Ind"},
		"everyone":   {"Number": "Sing", "PronType": "Ind"},
		"everybody":  {"Number": "Sing", "PronType": "Ind"},
		"everything": {"Number": "Sing", "PronType": "Ind"},
		"nobody":     {"Number": "Sing", "PronType": "Ind"},
		"nothing":    {"Number": "Sing", "PronType": "Ind"},
		"none":       {"PronType": "Ind"},

		// Interrogative / relative
		"who":  {"PronType": "Rel"},
		"whom": {"Case": "Acc", "PronType": "Rel"},
		"what": {"PronType": "Int"},
	}
}

// englishDeterminers maps each determiner to its features. Demonstratives
// carry PronType=Dem, articles PronType=Art.
func englishDeterminers() map[string]map[string]string {
	return map[string]map[string]string{
		"the": {"PronType": "Art", "Definite": "Def"},
		"a":   {"PronType": "Art", "Definite": "Ind"},
		"an":  {"PronType": "Art", "Definite": "Ind"},

		"this":  {"PronType": "Dem", "Number": "Sing"},
		"that":  {"PronType": "Dem", "Number": "Sing"},
		"these": {"PronType": "Dem", "Number": "Plur"},
		"those": {"PronType": "Dem", "Number": "Plur"},

		"each":    {"PronType": "Tot"},
		"every":   {"PronType": "Tot"},
		"all":     {"PronType": "Tot"},
		"both":    {"PronType": "Tot"},
		"some":    {"PronType": "Ind"},
		"any":     {"PronType": "Ind"},
		"no":      {"PronType": "Neg"},
		"either":  {"PronType": "Ind"},
		"neither": {"PronType": "Neg"},
		"another": {"PronType": "Ind"},
		"such":    {"PronType": "Ind"},
		"which":   {"PronType": "Int"},
		"whose":   {"Poss": "Yes", "PronType": "Int"},
	}
}

// englishLinkingVerbs lists the copulas and auxiliaries that signal a
// demonstrative is standing alone rather than modifying a noun.
func englishLinkingVerbs() map[string]bool {
	verbs := []string{
		"is", "was", "are", "were", "be", "been", "being",
		"seems", "seemed", "looks", "looked", "sounds", "sounded",
		"means", "meant", "happens", "happened", "works", "worked",
		"does", "did", "has", "had", "will", "would", "can", "could",
		"may", "might", "should", "must", "explains", "shows",
	}
	set := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		set[v] = true
	}
	return set
}
