package tagger

// Tag is a coarse part-of-speech class. The set mirrors the Universal
// POS classes the density metrics care about; everything else is Other.
type Tag string

const (
	TagPronoun     Tag = "PRON"
	TagDeterminer  Tag = "DET"
	TagPunctuation Tag = "PUNCT"
	TagSpace       Tag = "SPACE"
	TagSymbol      Tag = "SYM"
	TagOther       Tag = "X"
)

// DepDeterminer is the plain-determiner dependency relation. A determiner
// attached through any other relation behaves pronominally.
const DepDeterminer = "det"

// Token is a single annotated token.
type Token struct {
	Text  string            `json:"text"`
	Tag   Tag               `json:"tag"`
	Dep   string            `json:"dep"`
	Morph map[string]string `json:"morph,omitempty"`
}

// HasMorph reports whether the token carries any of the given
// morphological feature keys.
func (t Token) HasMorph(keys ...string) bool {
	for _, key := range keys {
		if _, ok := t.Morph[key]; ok {
			return true
		}
	}
	return false
}

// Annotation is the per-call output of a provider. It is created fresh
// for every analysis and owned by the caller.
type Annotation struct {
	Tokens        []Token `json:"tokens"`
	SentenceCount int     `json:"sentence_count"`
}

// Provider annotates raw text with part-of-speech and morphological
// information. Implementations may be backed by an external NLP model;
// the engine only ever consumes this interface.
type Provider interface {
	Annotate(text string) (*Annotation, error)
}

// Capability is the two-variant provider handle: either Available with a
// usable Provider, or Unavailable. The engine branches on it exactly once
// per analysis.
type Capability struct {
	provider Provider
}

// Available reports whether a provider was loaded.
func (c Capability) Available() bool {
	return c.provider != nil
}

// Provider returns the loaded provider, or nil when unavailable.
func (c Capability) Provider() Provider {
	return c.provider
}

// Unavailable is the absent capability.
func Unavailable() Capability {
	return Capability{}
}

// TryLoad resolves a language code against the configured model map and
// loads the matching provider. Loading never fails into the caller: an
// unknown language, an unknown model identifier, or any loader problem
// yields the Unavailable capability.
func TryLoad(languageCode string, models map[string]string) Capability {
	model, ok := models[languageCode]
	if !ok {
		return Unavailable()
	}

	switch model {
	case ModelEnglishLexicon:
		return Capability{provider: newEnglishProvider()}
	default:
		return Unavailable()
	}
}
