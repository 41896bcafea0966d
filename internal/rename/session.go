package rename

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/hello-fyne-go/internal/model"
)

// Outcome is how an interactive session ended.
type Outcome int

const (
	Completed Outcome = iota
	Aborted
)

// Summary describes a finished session.
type Summary struct {
	Outcome Outcome
	To      model.NamingProfile
	Result  Result
}

// Session runs the interactive rename flow.
type Session struct {
	Prompter *Prompter
	Out      io.Writer
	Renamer  *Renamer
}

// Run asks for the new names, confirms, and renames. Validation errors are
// returned before anything on disk changes; a declined confirmation returns
// Aborted with a nil error.
func (s *Session) Run() (Summary, error) {
	from := s.Renamer.From
	title := from.DisplayName + " - Project Renamer"
	fmt.Fprintln(s.Out, title)
	fmt.Fprintln(s.Out, strings.Repeat("=", 40))
	fmt.Fprintln(s.Out)

	to, err := s.ask()
	if err != nil {
		return Summary{Outcome: Aborted}, err
	}

	fmt.Fprintln(s.Out)
	fmt.Fprintf(s.Out, "  Project name:   %s\n", to.Slug)
	fmt.Fprintf(s.Out, "  Application ID: %s\n", to.AppID)
	fmt.Fprintf(s.Out, "  Display name:   %s\n", to.DisplayName)
	fmt.Fprintf(s.Out, "  Module name:    %s\n", to.Module)
	fmt.Fprintf(s.Out, "  Class prefix:   %s\n", to.ClassPrefix)
	fmt.Fprintln(s.Out)

	ok, err := s.Prompter.Confirm("Proceed? [Y/n] ")
	if err != nil {
		return Summary{Outcome: Aborted, To: to}, err
	}
	if !ok {
		fmt.Fprintln(s.Out, "Aborted.")
		return Summary{Outcome: Aborted, To: to}, nil
	}

	res, err := s.Renamer.Run(to)
	summary := Summary{Outcome: Completed, To: to, Result: res}
	if err != nil {
		return summary, err
	}

	fmt.Fprintln(s.Out)
	verb := "Updated"
	if s.Renamer.DryRun {
		verb = "Would update"
	}
	fmt.Fprintf(s.Out, "Done! %s content in %d files, renamed %d files.\n", verb, len(res.Updated), len(res.Moves))
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, "You can now delete the rename tool (cmd/rename) if you no longer need it.")
	return summary, nil
}

func (s *Session) ask() (model.NamingProfile, error) {
	slug, err := s.Prompter.Ask("Project name (kebab-case, e.g. my-cool-app): ", "")
	if err != nil {
		return model.NamingProfile{}, err
	}
	if err := model.ValidateSlug(slug); err != nil {
		return model.NamingProfile{}, err
	}

	defaultID := model.DefaultAppID(slug)
	appID, err := s.Prompter.Ask(fmt.Sprintf("Application ID [%s]: ", defaultID), defaultID)
	if err != nil {
		return model.NamingProfile{}, err
	}
	if err := model.ValidateAppID(appID); err != nil {
		return model.NamingProfile{}, err
	}

	defaultDisplay := model.TitleCase(slug)
	display, err := s.Prompter.Ask(fmt.Sprintf("Display name [%s]: ", defaultDisplay), defaultDisplay)
	if err != nil {
		return model.NamingProfile{}, err
	}

	return model.NewNamingProfile(slug, appID, display)
}
