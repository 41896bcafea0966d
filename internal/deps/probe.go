package deps

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single version probe.
const DefaultTimeout = 5 * time.Second

var errUndecodable = errors.New("version output is not valid UTF-8")

// ProbeState is the tri-state outcome of a capability probe.
type ProbeState int

const (
	Unavailable             ProbeState = iota // Not present, or present but unusable
	AvailableUnknownVersion                   // Present; version could not be determined
	Available                                 // Present with a known version
)

func (s ProbeState) String() string {
	switch s {
	case Available:
		return "available"
	case AvailableUnknownVersion:
		return "available (version unknown)"
	default:
		return "unavailable"
	}
}

// Found reports whether the probed thing is present at all.
func (s ProbeState) Found() bool { return s != Unavailable }

// ProbeResult is what a probe learned about one dependency.
type ProbeResult struct {
	State   ProbeState
	Path    string
	Version string
	Err     error
}

// ProbeCommand locates check.Command on the search path and, when version
// arguments are configured, asks it for its version. Failures while asking
// degrade to AvailableUnknownVersion.
func ProbeCommand(ctx context.Context, r Runner, check Check, timeout time.Duration, log zerolog.Logger) ProbeResult {
	path, err := r.LookPath(check.Command)
	if err != nil || path == "" {
		log.Debug().Str("tool", check.Command).Err(err).Msg("not found on PATH")
		return ProbeResult{State: Unavailable}
	}
	if check.Args == nil {
		return ProbeResult{State: AvailableUnknownVersion, Path: path}
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Output(ctx, path, check.Args...)
	if err == nil && !utf8.Valid(out) {
		err = errUndecodable
	}
	if err != nil {
		log.Debug().Str("tool", check.Command).Err(err).Msg("version probe failed")
		return ProbeResult{State: AvailableUnknownVersion, Path: path, Err: err}
	}

	parse := check.Parse
	if parse == nil {
		parse = FirstNumericToken
	}
	version := strings.TrimSpace(parse(strings.TrimSpace(string(out))))
	if version == "" {
		return ProbeResult{State: AvailableUnknownVersion, Path: path}
	}
	log.Debug().Str("tool", check.Command).Str("version", version).Msg("probed")
	return ProbeResult{State: Available, Path: path, Version: version}
}
