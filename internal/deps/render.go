package deps

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/example/hello-fyne-go/internal/config"
	"github.com/example/hello-fyne-go/internal/model"
)

// Styler applies ANSI styles, or nothing when colour is disabled.
type Styler struct {
	profile termenv.Profile
}

// NewStyler picks plain or ANSI output from the terminal settings.
func NewStyler(term config.Terminal) Styler {
	if term.NoColor {
		return Styler{profile: termenv.Ascii}
	}
	return Styler{profile: termenv.ANSI}
}

func (s Styler) Bold(text string) string { return s.profile.String(text).Bold().String() }
func (s Styler) Dim(text string) string  { return s.profile.String(text).Faint().String() }

func (s Styler) Green(text string) string  { return s.color("2", text) }
func (s Styler) Yellow(text string) string { return s.color("3", text) }
func (s Styler) Red(text string) string    { return s.color("1", text) }
func (s Styler) Cyan(text string) string   { return s.color("6", text) }

func (s Styler) color(ansi, text string) string {
	return s.profile.String(text).Foreground(s.profile.Color(ansi)).String()
}

const ruleWidth = 40

// Render writes the human-readable report.
func Render(w io.Writer, r Report, st Styler) {
	rule := strings.Repeat("─", ruleWidth)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s dependency check\n", st.Bold(r.Title))
	fmt.Fprintf(w, "  %s\n", rule)

	for _, sec := range r.Sections {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", st.Bold(sec.Title))
		for _, e := range sec.Entries {
			fmt.Fprintln(w, renderEntry(e, st))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", rule)
	switch {
	case r.OK && !r.Warn:
		fmt.Fprintf(w, "  %s %s\n", st.Green("✓"), st.Bold("All dependencies satisfied!"))
	case r.OK:
		fmt.Fprintf(w, "  %s %s\n", st.Green("✓"), st.Bold("Required dependencies satisfied."))
		fmt.Fprintf(w, "    %s\n", st.Dim("Some optional tools are not installed."))
	default:
		fmt.Fprintf(w, "  %s %s\n", st.Red("✗"), st.Bold("Some required dependencies are missing."))
		if len(r.InstallHint) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  %s\n", st.Cyan("On Ubuntu/Debian, install with:"))
			for i, line := range r.InstallHint {
				if i == 0 {
					fmt.Fprintf(w, "  %s %s\n", st.Dim("$"), line)
				} else {
					fmt.Fprintf(w, "  %s\n", line)
				}
			}
		}
	}
	fmt.Fprintln(w)
}

func renderEntry(e model.Entry, st Styler) string {
	ver := ""
	if e.Version != "" {
		ver = st.Dim(" " + e.Version)
	}
	switch e.Status {
	case model.StatusOutdated, model.StatusOptionalOutdated:
		return fmt.Sprintf("  %s %s%s  %s", st.Yellow("▲"), e.Label, ver, st.Yellow("need >= "+e.Required))
	case model.StatusOptionalMissing:
		return fmt.Sprintf("  %s %s  %s", st.Dim("○"), st.Dim(e.Label), st.Dim("not installed"))
	case model.StatusMissing:
		return fmt.Sprintf("  %s %s  %s", st.Red("✗"), e.Label, st.Red("missing"))
	default:
		return fmt.Sprintf("  %s %s%s", st.Green("✓"), e.Label, ver)
	}
}
