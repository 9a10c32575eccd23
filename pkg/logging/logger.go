package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Level controls how much diagnostic output the engine emits.
type Level string

const (
	// LevelSilent discards all diagnostics. This is the default: the
	// analyzer is designed to sit behind a pipe that must carry nothing
	// but the report itself.
	LevelSilent Level = "silent"

	// LevelErrors emits only degradation events (failed config load,
	// unavailable tagger, collapsed metric groups).
	LevelErrors Level = "errors"

	// LevelVerbose emits per-group timings and counts.
	LevelVerbose Level = "verbose"
)

// Diagnostics configures where and how loudly a component logs. It is
// passed explicitly at construction; there is no package-global logger
// and no process-wide stream redirection.
type Diagnostics struct {
	Level Level     `json:"level"`
	Sink  io.Writer `json:"-"`
}

// Silent returns a Diagnostics that discards everything.
func Silent() Diagnostics {
	return Diagnostics{Level: LevelSilent, Sink: io.Discard}
}

// Verbose returns a Diagnostics writing debug-level output to sink.
func Verbose(sink io.Writer) Diagnostics {
	return Diagnostics{Level: LevelVerbose, Sink: sink}
}

// Logger builds a contextual zerolog logger for the given component.
func (d Diagnostics) Logger(component string) zerolog.Logger {
	sink := d.Sink
	if sink == nil {
		sink = io.Discard
	}

	level := zerolog.Disabled
	switch d.Level {
	case LevelErrors:
		level = zerolog.ErrorLevel
	case LevelVerbose:
		level = zerolog.DebugLevel
	}

	return zerolog.New(sink).Level(level).With().
		Timestamp().
		Str("component", component).
		Logger()
}
