// Hello Fyne Go - starter template for a fyne desktop application
//
// Build:
//   go build -o hello-fyne-go ./cmd/hello-fyne-go
//
// Using fyne-cross for packaged builds:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross linux -arch=amd64
//
// Before building, run ./cmd/check-deps to verify the toolchain and system
// libraries, and ./cmd/rename to re-brand the template.

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/example/hello-fyne-go/internal/config"
	"github.com/example/hello-fyne-go/internal/logger"
	"github.com/example/hello-fyne-go/internal/model"
	"github.com/example/hello-fyne-go/internal/project"
	"github.com/example/hello-fyne-go/internal/ui"
)

var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "hello-fyne-go",
	Short:   "Hello Fyne Go desktop application",
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		term := config.Load(os.Stderr)
		log := logger.Component(logger.New(os.Stderr, term.LogLevel, verbose, term.NoColor), "ui")

		configPath := project.DefaultConfigPath()
		prefs, err := project.LoadAppConfig(configPath)
		if err != nil {
			log.Warn().Err(err).Str("path", configPath).Msg("ignoring unreadable preferences")
			prefs = model.DefaultAppConfig()
		}

		application := ui.NewApplication(app.NewWithID(model.TemplateIdentity().AppID), version, prefs, log)
		application.ConfigPath = configPath
		if err := application.Run(); err != nil {
			return fmt.Errorf("failed to start: %w", err)
		}
		return nil
	},
}

func main() {
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose logging")
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
