package deps

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/hello-fyne-go/internal/model"
)

// SectionReport holds the evaluated entries of one catalog section.
type SectionReport struct {
	Title   string
	Entries []model.Entry
}

// Report is the outcome of a full check run.
type Report struct {
	Title       string
	Sections    []SectionReport
	InstallHint []string
	OK          bool // Every required dependency is present and new enough
	Warn        bool // At least one optional dependency is missing or outdated
}

// ExitCode is 0 when every required dependency is satisfied and 1 otherwise.
func (r Report) ExitCode() int {
	if r.OK {
		return 0
	}
	return 1
}

// ModuleProbe is satisfied by ModuleProber.
type ModuleProbe interface {
	Probe(module, abiVersion string) ModuleResult
}

// Checker runs a Catalog against the local system.
type Checker struct {
	Runner  Runner
	Modules ModuleProbe
	Logger  zerolog.Logger
	Timeout time.Duration
}

// NewChecker returns a Checker using os/exec and the given pkg-config search path.
func NewChecker(searchPath []string, log zerolog.Logger) *Checker {
	return &Checker{
		Runner:  ExecRunner{},
		Modules: ModuleProber{SearchPath: searchPath},
		Logger:  log,
		Timeout: DefaultTimeout,
	}
}

// Run probes every check in order. It never fails; probe problems show up
// as missing or unknown-version entries.
func (c *Checker) Run(ctx context.Context, cat Catalog) Report {
	report := Report{Title: cat.Title, InstallHint: cat.InstallHint, OK: true}
	for _, sec := range cat.Sections {
		sr := SectionReport{Title: sec.Title}
		for _, check := range sec.Checks {
			entry := c.check(ctx, check)
			if entry.Fails() {
				report.OK = false
			}
			if entry.Warns() {
				report.Warn = true
			}
			sr.Entries = append(sr.Entries, entry)
		}
		report.Sections = append(report.Sections, sr)
	}
	return report
}

func (c *Checker) check(ctx context.Context, check Check) model.Entry {
	if check.Module != "" {
		res := c.Modules.Probe(check.Module, check.MinVersion)
		switch {
		case errors.Is(res.Err, ErrVersionMismatch):
			c.Logger.Debug().Str("module", check.Module).Err(res.Err).Msg("toolkit module too old")
			return Evaluate(check.Label, true, res.Version, check.MinVersion, check.Optional)
		case errors.Is(res.Err, ErrModuleMissing):
			c.Logger.Debug().Str("module", check.Module).Msg("toolkit module not installed")
		}
		return Evaluate(check.Label, res.State.Found(), res.Version, check.MinVersion, check.Optional)
	}

	res := ProbeCommand(ctx, c.Runner, check, c.Timeout, c.Logger)
	return Evaluate(check.Label, res.State.Found(), res.Version, check.MinVersion, check.Optional)
}

// Evaluate decides an entry's status. A version is only compared when both
// it and a minimum are known; an unknown version counts as satisfied.
func Evaluate(label string, found bool, version, required string, optional bool) model.Entry {
	e := model.Entry{
		Label:    label,
		Found:    found,
		Version:  version,
		Required: required,
		Optional: optional,
	}
	switch {
	case !found && optional:
		e.Status = model.StatusOptionalMissing
	case !found:
		e.Status = model.StatusMissing
	case required != "" && version != "" && VersionLess(version, required):
		if optional {
			e.Status = model.StatusOptionalOutdated
		} else {
			e.Status = model.StatusOutdated
		}
	default:
		e.Status = model.StatusSatisfied
	}
	return e
}
