package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. verbose forces debug output;
// otherwise level applies.
func New(w io.Writer, level zerolog.Level, verbose, noColor bool) zerolog.Logger {
	if verbose {
		level = zerolog.DebugLevel
	}
	consoleWriter := zerolog.ConsoleWriter{Out: w, NoColor: noColor}
	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the subsystem name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
