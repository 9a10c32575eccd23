package config

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the full analyzer configuration.
type Config struct {
	System    SystemConfig      `json:"system" yaml:"system"`
	Languages map[string]string `json:"languages" yaml:"languages"`
}

// SystemConfig holds engine-level limits and defaults.
type SystemConfig struct {
	// MaxTextLength is the truncation bound, in characters. Everything
	// past it is dropped before any metric runs.
	MaxTextLength int `json:"max_text_length" yaml:"max_text_length"`

	// DefaultLanguage selects the tagger model at engine construction.
	DefaultLanguage string `json:"default_language" yaml:"default_language"`
}

// overrideDocument mirrors Config with optional fields so that a partial
// override file can be distinguished from one that sets zero values.
type overrideDocument struct {
	System struct {
		MaxTextLength   *int    `yaml:"max_text_length"`
		DefaultLanguage *string `yaml:"default_language"`
	} `yaml:"system"`
	Languages map[string]string `yaml:"languages"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		System: SystemConfig{
			MaxTextLength:   100000,
			DefaultLanguage: "en",
		},
		Languages: map[string]string{
			"en": "en-core-lexicon",
			"ru": "ru-core-lexicon",
		},
	}
}

// Load builds a Config from defaults plus an optional YAML override file.
// Config loading never fails: a missing, unreadable, or malformed override
// leaves the defaults untouched. Override keys win per section; keys the
// override does not mention keep their default values.
func Load(path string, log zerolog.Logger) *Config {
	cfg := DefaultConfig()

	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Config override unreadable, using defaults")
		return cfg
	}

	var override overrideDocument
	if err := yaml.Unmarshal(data, &override); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Config override malformed, using defaults")
		return cfg
	}

	cfg.merge(&override)
	cfg.normalize(log)

	log.Debug().
		Int("max_text_length", cfg.System.MaxTextLength).
		Str("default_language", cfg.System.DefaultLanguage).
		Int("languages", len(cfg.Languages)).
		Msg("Config loaded")

	return cfg
}

// merge applies an override field by field. Only fields the override
// actually sets replace defaults.
func (c *Config) merge(o *overrideDocument) {
	if o.System.MaxTextLength != nil && *o.System.MaxTextLength > 0 {
		c.System.MaxTextLength = *o.System.MaxTextLength
	}
	if o.System.DefaultLanguage != nil && *o.System.DefaultLanguage != "" {
		c.System.DefaultLanguage = *o.System.DefaultLanguage
	}
	for code, model := range o.Languages {
		c.Languages[code] = model
	}
}

// normalize canonicalizes language codes. A default language that fails to
// parse falls back to "en"; unparseable codes in the languages map are kept
// as written since they only ever miss lookups.
func (c *Config) normalize(log zerolog.Logger) {
	tag, err := language.Parse(c.System.DefaultLanguage)
	if err != nil {
		log.Error().Err(err).
			Str("language", c.System.DefaultLanguage).
			Msg("Invalid default language, falling back to en")
		c.System.DefaultLanguage = "en"
		return
	}

	base, _ := tag.Base()
	c.System.DefaultLanguage = base.String()
}

// Model returns the tagger model identifier configured for the given
// language code, or "" when none is configured.
func (c *Config) Model(languageCode string) string {
	return c.Languages[languageCode]
}
