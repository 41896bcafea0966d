package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// HelloFyneGoWindow is the main window. Its content comes from the
// window.yaml layout template.
type HelloFyneGoWindow struct {
	fyne.Window

	// Label is the template child with id "label".
	Label *widget.Label

	children map[string]fyne.CanvasObject
}

// NewHelloFyneGoWindow builds the main window for app from layout.
func NewHelloFyneGoWindow(app *Application, layout Layout) (*HelloFyneGoWindow, error) {
	content, children, err := layout.build(func(action string) { app.ActivateAction(action) })
	if err != nil {
		return nil, err
	}
	label, ok := children["label"].(*widget.Label)
	if !ok {
		return nil, fmt.Errorf("layout has no label child")
	}

	title := layout.Title
	if title == "" {
		title = app.profile.DisplayName
	}
	w := &HelloFyneGoWindow{
		Window:   app.fyneApp.NewWindow(title),
		Label:    label,
		children: children,
	}
	w.SetContent(content)

	size := fyne.NewSize(layout.Width, layout.Height)
	if app.prefs.WindowWidth > 0 && app.prefs.WindowHeight > 0 {
		size = fyne.NewSize(app.prefs.WindowWidth, app.prefs.WindowHeight)
	}
	w.Resize(size)
	return w, nil
}

// Child returns the template widget with the given id, or nil.
func (w *HelloFyneGoWindow) Child(id string) fyne.CanvasObject {
	return w.children[id]
}
