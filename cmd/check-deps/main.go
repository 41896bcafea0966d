// check-deps verifies that the tools and system libraries needed to build
// the app are installed.
//
// Exit status is 0 when every required dependency is present and new
// enough, and 1 otherwise. Missing optional tools only produce a warning.
// Set NO_COLOR to disable coloured output.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hello-fyne-go/internal/config"
	"github.com/example/hello-fyne-go/internal/deps"
	"github.com/example/hello-fyne-go/internal/logger"
)

var (
	noColor bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "check-deps",
	Short:         "Check that all required dependencies are installed",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		term := config.Load(os.Stdout)
		if noColor {
			term.NoColor = true
		}
		log := logger.Component(logger.New(os.Stderr, term.LogLevel, verbose, term.NoColor), "deps")

		checker := deps.NewChecker(deps.DefaultSearchPath(os.LookupEnv), log)
		report := checker.Run(context.Background(), deps.DefaultCatalog())
		deps.Render(cmd.OutOrStdout(), report, deps.NewStyler(term))
		os.Exit(report.ExitCode())
	},
}

func main() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Log probe details to stderr")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
