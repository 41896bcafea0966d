package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/rs/zerolog"

	"github.com/example/hello-fyne-go/internal/assets"
	"github.com/example/hello-fyne-go/internal/model"
	"github.com/example/hello-fyne-go/internal/project"
)

// Application wires the fyne app to the main window and the app-wide actions.
type Application struct {
	fyneApp fyne.App
	version string
	profile model.NamingProfile
	prefs   model.AppConfig
	theme   *HelloFyneGoTheme
	logger  zerolog.Logger

	// ConfigPath is where preferences are saved when the window closes.
	// Empty disables saving.
	ConfigPath string

	actions map[string]*Action
	window  *HelloFyneGoWindow
}

// NewApplication registers the quit and about actions on a.
func NewApplication(a fyne.App, version string, prefs model.AppConfig, log zerolog.Logger) *Application {
	app := &Application{
		fyneApp: a,
		version: version,
		profile: model.TemplateIdentity(),
		prefs:   prefs.Normalize(),
		logger:  log,
		actions: make(map[string]*Action),
	}
	app.theme = NewHelloFyneGoTheme(app.prefs.Theme)
	a.Settings().SetTheme(app.theme)
	if icon := assets.Icon(); icon != nil {
		a.SetIcon(icon)
	}

	app.mustCreateAction("quit", app.Quit, "<primary>q")
	app.mustCreateAction("about", app.ShowAbout)
	return app
}

// CreateAction registers a named action with optional accelerators such as
// "<primary>q". Shortcuts are bound when the window is created.
func (a *Application) CreateAction(name string, callback func(), accels ...string) error {
	if _, exists := a.actions[name]; exists {
		return fmt.Errorf("action %q already registered", name)
	}
	act := &Action{Name: name, Callback: callback}
	for _, accel := range accels {
		sc, err := ParseAccelerator(accel)
		if err != nil {
			return fmt.Errorf("action %q: %w", name, err)
		}
		act.Shortcuts = append(act.Shortcuts, sc)
	}
	a.actions[name] = act
	if a.window != nil {
		a.bindShortcuts(act)
	}
	return nil
}

func (a *Application) mustCreateAction(name string, callback func(), accels ...string) {
	if err := a.CreateAction(name, callback, accels...); err != nil {
		panic(err)
	}
}

// ActivateAction runs the named action. It reports whether the action exists.
func (a *Application) ActivateAction(name string) bool {
	act, ok := a.actions[name]
	if !ok {
		a.logger.Warn().Str("action", name).Msg("unknown action")
		return false
	}
	act.Callback()
	return true
}

// Activate shows the main window, creating it on first use.
func (a *Application) Activate() (*HelloFyneGoWindow, error) {
	if a.window == nil {
		layout, err := LoadLayout(assets.WindowLayoutPath)
		if err != nil {
			return nil, err
		}
		w, err := NewHelloFyneGoWindow(a, layout)
		if err != nil {
			return nil, err
		}
		a.window = w
		a.setupMenus()
		for _, act := range a.actions {
			a.bindShortcuts(act)
		}
		w.SetOnClosed(a.savePreferences)
	}
	a.window.Show()
	return a.window, nil
}

// Run activates the app and hands control to the fyne event loop.
func (a *Application) Run() error {
	w, err := a.Activate()
	if err != nil {
		return err
	}
	w.CenterOnScreen()
	a.fyneApp.Run()
	return nil
}

// Quit stops the event loop.
func (a *Application) Quit() {
	a.fyneApp.Quit()
}

// ShowAbout presents the about dialog over the main window.
func (a *Application) ShowAbout() {
	if a.window == nil {
		return
	}
	dialog.ShowInformation(
		"About "+a.profile.DisplayName,
		fmt.Sprintf("%s\n\nVersion %s\nDeveloped by Developer\n\n© 2025 Developer",
			a.profile.DisplayName, a.version),
		a.window,
	)
}

// Window returns the main window, or nil before Activate.
func (a *Application) Window() *HelloFyneGoWindow {
	return a.window
}

func (a *Application) setupMenus() {
	about := fyne.NewMenuItem("About "+a.profile.DisplayName, func() { a.ActivateAction("about") })
	quit := fyne.NewMenuItem("Quit", func() { a.ActivateAction("quit") })
	quit.IsQuit = true
	if sc := a.actions["quit"].Shortcuts; len(sc) > 0 {
		quit.Shortcut = sc[0]
	}
	a.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("App", about, fyne.NewMenuItemSeparator(), quit),
	))
}

func (a *Application) bindShortcuts(act *Action) {
	name := act.Name
	for _, sc := range act.Shortcuts {
		a.window.Canvas().AddShortcut(sc, func(fyne.Shortcut) { a.ActivateAction(name) })
	}
}

func (a *Application) savePreferences() {
	if a.ConfigPath == "" || a.window == nil {
		return
	}
	size := a.window.Canvas().Size()
	prefs := a.prefs
	prefs.WindowWidth, prefs.WindowHeight = size.Width, size.Height
	if err := project.SaveAppConfig(a.ConfigPath, prefs); err != nil {
		a.logger.Error().Err(err).Str("path", a.ConfigPath).Msg("failed to save preferences")
	}
}
