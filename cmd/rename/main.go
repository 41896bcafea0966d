// rename re-brands the template into a new project.
//
// It asks for a project name, application ID and display name, then
// rewrites every text file in the project and renames files carrying the
// old names. The change is in place and cannot be undone; run it once on a
// fresh checkout and delete cmd/rename afterwards.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/hello-fyne-go/internal/config"
	"github.com/example/hello-fyne-go/internal/logger"
	"github.com/example/hello-fyne-go/internal/project"
	"github.com/example/hello-fyne-go/internal/rename"
)

var (
	root        string
	dryRun      bool
	journalPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:           "rename",
	Short:         "Rename the hello-fyne-go template to your own project",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		term := config.Load(os.Stderr)
		log := logger.Component(logger.New(os.Stderr, term.LogLevel, verbose, term.NoColor), "rename")

		dir := root
		if dir == "" {
			var err error
			if dir, err = findProjectRoot(); err != nil {
				return err
			}
		}
		dir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve root: %w", err)
		}

		identityPath := filepath.Join(dir, project.IdentityFileName)
		from, err := project.LoadIdentity(identityPath)
		if err != nil {
			return err
		}

		var skip []string
		if self, err := os.Executable(); err == nil {
			skip = append(skip, self)
		}

		renamer := &rename.Renamer{
			Root:         dir,
			From:         from,
			Skip:         skip,
			DryRun:       dryRun,
			IdentityPath: identityPath,
			Logger:       log,
		}
		session := &rename.Session{
			Prompter: rename.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			Out:      cmd.OutOrStdout(),
			Renamer:  renamer,
		}

		summary, err := session.Run()
		if err != nil {
			return err
		}
		if summary.Outcome != rename.Completed || journalPath == "" {
			return nil
		}
		return writeJournal(renamer, summary)
	},
}

func writeJournal(r *rename.Renamer, s rename.Summary) error {
	j := project.NewJournal(r.From, s.To)
	j.DryRun = r.DryRun
	for _, f := range s.Result.Updated {
		j.Updated = append(j.Updated, r.Rel(f))
	}
	for _, m := range s.Result.Moves {
		j.Renamed = append(j.Renamed, project.RenamedFile{From: r.Rel(m.From), To: r.Rel(m.To)})
	}
	return project.WriteJournal(journalPath, j)
}

// findProjectRoot walks up from the working directory to the nearest
// directory holding go.mod, falling back to the working directory.
func findProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

func main() {
	rootCmd.Flags().StringVar(&root, "root", "", "Project directory (default: nearest directory with go.mod)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing")
	rootCmd.Flags().StringVar(&journalPath, "journal", "", "Write a JSON record of the changes to this file")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log every file touched")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, rename.ErrNoInput) {
			fmt.Fprintln(os.Stderr, "Error: no input.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v.\n", err)
		}
		os.Exit(1)
	}
}
