package deps

// Check describes one dependency. Exactly one of Command or Module is set.
type Check struct {
	Label      string
	Command    string        // Executable looked up on PATH
	Args       []string      // Version flag; nil checks presence only
	Parse      VersionParser // Defaults to FirstNumericToken
	Module     string        // pkg-config module probed in-process
	MinVersion string        // Minimum (or ABI) version; empty accepts any
	Optional   bool
}

// Section groups checks under a heading in the report.
type Section struct {
	Title  string
	Checks []Check
}

// Catalog is the full list of checks run by check-deps.
type Catalog struct {
	Title       string
	Sections    []Section
	InstallHint []string
}

var versionFlag = []string{"--version"}

// DefaultCatalog lists the tools and libraries needed to build and package
// the template.
func DefaultCatalog() Catalog {
	return Catalog{
		Title: "hello-fyne-go",
		Sections: []Section{
			{
				Title: "Build tools",
				Checks: []Check{
					{Label: "Go (>= 1.24)", Command: "go", Args: []string{"version"}, Parse: GoVersion, MinVersion: "1.24"},
					{Label: "C compiler (gcc)", Command: "gcc", Args: versionFlag, Parse: FirstLineLastToken},
					{Label: "pkg-config", Command: "pkg-config", Args: versionFlag},
					{Label: "git", Command: "git", Args: versionFlag},
				},
			},
			{
				Title: "Toolkit libraries",
				Checks: []Check{
					{Label: "OpenGL (libgl-dev)", Module: "gl", MinVersion: "1.2"},
					{Label: "X11 (libx11-dev)", Module: "x11", MinVersion: "1.6"},
				},
			},
			{
				Title: "Optional",
				Checks: []Check{
					{Label: "fyne CLI", Command: "fyne", Args: []string{"version"}, Parse: TrimV(LastToken), Optional: true},
					{Label: "fyne-cross", Command: "fyne-cross", Args: []string{"version"}, Parse: TrimV(LastToken), Optional: true},
					{Label: "desktop-file-validate", Command: "desktop-file-validate", Args: versionFlag, Parse: LastToken, Optional: true},
					{Label: "appstreamcli", Command: "appstreamcli", Args: versionFlag, Parse: LastToken, Optional: true},
					{Label: "Flatpak Builder", Command: "flatpak-builder", Args: versionFlag, Parse: LastToken, Optional: true},
				},
			},
		},
		InstallHint: []string{
			"sudo apt install golang gcc pkg-config git \\",
			"    libgl1-mesa-dev xorg-dev",
		},
	}
}
