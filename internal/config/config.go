// Package config gathers the process-wide settings the command-line tools
// read from the environment, so the rest of the code can take them as plain
// values.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// LogLevelEnv overrides the default log level of the command-line tools.
const LogLevelEnv = "HELLO_FYNE_GO_LOG_LEVEL"

// Terminal describes how output should be rendered.
type Terminal struct {
	NoColor  bool
	LogLevel zerolog.Level
}

// Load reads an optional .env file and derives the terminal settings for out.
func Load(out *os.File) Terminal {
	_ = godotenv.Load()

	tty := false
	if out != nil {
		fd := out.Fd()
		tty = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return FromEnv(os.LookupEnv, tty)
}

// FromEnv builds Terminal settings from an environment lookup function.
// Colour is off when NO_COLOR is set to any value, including empty, or when
// the output is not a terminal.
func FromEnv(lookup func(string) (string, bool), isTTY bool) Terminal {
	_, noColor := lookup("NO_COLOR")

	level := zerolog.WarnLevel
	if v, ok := lookup(LogLevelEnv); ok {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v))); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
	}

	return Terminal{
		NoColor:  noColor || !isTTY,
		LogLevel: level,
	}
}
