package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/claritext/claritext/pkg/config"
	"github.com/claritext/claritext/pkg/logging"
	"github.com/claritext/claritext/pkg/tagger"
)

// Report is the flat, JSON-serializable analysis result. It contains
// metric values (numbers, booleans, short labels) plus a nested
// "metadata" map, or a single "error" entry when analysis could not run.
type Report map[string]any

// HasError reports whether the report is an error result.
func (r Report) HasError() bool {
	_, ok := r["error"]
	return ok
}

// Engine runs the full metric pipeline over single documents. The config
// and capability provider are bound once at construction and never
// mutated; Analyze calls share no other state. Provider implementations
// are not required to be safe for concurrent annotation, so concurrent
// callers should use separate engines.
type Engine struct {
	cfg        *config.Config
	capability tagger.Capability
	log        zerolog.Logger
}

// New builds an engine from an immutable config and an explicit
// diagnostics configuration. The capability provider for the configured
// default language is loaded here, once; a failed load degrades the
// engine rather than failing construction.
func New(cfg *config.Config, diag logging.Diagnostics) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := diag.Logger("analyzer")

	capability := tagger.TryLoad(cfg.System.DefaultLanguage, cfg.Languages)
	if !capability.Available() {
		log.Error().
			Str("language", cfg.System.DefaultLanguage).
			Msg("Tagger unavailable, density metrics disabled")
	}

	return &Engine{
		cfg:        cfg,
		capability: capability,
		log:        log,
	}
}

// Analyze computes the complexity report for one document. It returns
// either a well-formed report or a single error result; metric-group
// failures degrade to omitted keys and never surface.
func (e *Engine) Analyze(text string) (report Report) {
	if strings.TrimSpace(text) == "" {
		return Report{"error": "empty text provided"}
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("Analysis pipeline collapsed")
			report = Report{"error": fmt.Sprintf("analysis failed: %v", r)}
		}
	}()

	start := time.Now()
	text = truncate(text, e.cfg.System.MaxTextLength)

	annotation := e.annotate(text)

	// The groups are independent and run concurrently; the result slots
	// fix the merge order regardless of completion order.
	var groups [5]map[string]any
	var g errgroup.Group
	g.Go(func() error { groups[0] = e.runGroup("readability", func() map[string]any { return computeReadability(text) }); return nil })
	g.Go(func() error { groups[1] = e.runGroup("basic_stats", func() map[string]any { return computeBasicStats(text) }); return nil })
	g.Go(func() error { groups[2] = e.runGroup("structural", func() map[string]any { return computeStructural(text) }); return nil })
	g.Go(func() error { groups[3] = e.runGroup("lexical", func() map[string]any { return computeLexical(text) }); return nil })
	g.Go(func() error {
		if annotation != nil {
			groups[4] = e.runGroup("density", func() map[string]any { return computeDensity(annotation) })
		}
		return nil
	})
	_ = g.Wait()

	report = Report{}
	for _, group := range groups {
		for key, value := range group {
			report[key] = value
		}
	}

	report["metadata"] = map[string]any{
		"analysis_id":             uuid.New().String(),
		"processing_time_seconds": time.Since(start).Seconds(),
		"text_length_characters":  len([]rune(text)),
		"text_length_words":       len(strings.Fields(text)),
		"language":                e.cfg.System.DefaultLanguage,
		"tagger_available":        annotation != nil,
	}

	report.stripEmpty()

	e.log.Debug().
		Int("metrics", len(report)).
		Dur("elapsed", time.Since(start)).
		Bool("tagger_available", annotation != nil).
		Msg("Analysis completed")

	return report
}

// annotate runs the capability provider, treating any failure or panic
// as provider-unavailable for this call.
func (e *Engine) annotate(text string) (ann *tagger.Annotation) {
	if !e.capability.Available() {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Msg("Tagger panicked, degrading")
			ann = nil
		}
	}()

	ann, err := e.capability.Provider().Annotate(text)
	if err != nil {
		e.log.Error().Err(err).Msg("Tagger failed, degrading")
		return nil
	}
	return ann
}

// runGroup executes one metric group, converting any panic into an empty
// result so a single group can never abort the pipeline.
func (e *Engine) runGroup(name string, fn func() map[string]any) (out map[string]any) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Interface("panic", r).Str("group", name).Msg("Metric group failed")
			out = map[string]any{}
		}
	}()

	started := time.Now()
	out = fn()

	e.log.Debug().
		Str("group", name).
		Int("metrics", len(out)).
		Dur("elapsed", time.Since(started)).
		Msg("Metric group completed")
	return out
}

// stripEmpty removes nil values and empty nested maps.
func (r Report) stripEmpty() {
	for key, value := range r {
		switch v := value.(type) {
		case nil:
			delete(r, key)
		case map[string]any:
			if len(v) == 0 {
				delete(r, key)
			}
		}
	}
}

// truncate bounds the text to max characters (runes, not bytes).
func truncate(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
