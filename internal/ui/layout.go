package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"gopkg.in/yaml.v3"

	"github.com/example/hello-fyne-go/internal/assets"
)

var ErrUnknownWidget = errors.New("unknown widget type")

// WidgetSpec describes one widget in a layout template.
type WidgetSpec struct {
	ID     string `yaml:"id"`
	Type   string `yaml:"type"` // label, button, separator
	Text   string `yaml:"text"`
	Style  string `yaml:"style"`  // heading, for labels
	Action string `yaml:"action"` // app action a button activates
}

// Layout is a window template loaded from a bundled resource.
type Layout struct {
	Title    string       `yaml:"title"`
	Width    float32      `yaml:"width"`
	Height   float32      `yaml:"height"`
	Children []WidgetSpec `yaml:"children"`
}

// LoadLayout reads and parses the layout template at resourcePath.
func LoadLayout(resourcePath string) (Layout, error) {
	data, err := assets.Lookup(resourcePath)
	if err != nil {
		return Layout{}, err
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout %s: %w", resourcePath, err)
	}
	return l, nil
}

// build creates the widgets of l in a vertical box. Widgets with an ID are
// returned in the map so the window can expose them.
func (l Layout) build(activate func(action string)) (fyne.CanvasObject, map[string]fyne.CanvasObject, error) {
	children := make(map[string]fyne.CanvasObject)
	box := container.NewVBox()
	for _, spec := range l.Children {
		obj, err := spec.build(activate)
		if err != nil {
			return nil, nil, err
		}
		if spec.ID != "" {
			if _, dup := children[spec.ID]; dup {
				return nil, nil, fmt.Errorf("duplicate widget id %q", spec.ID)
			}
			children[spec.ID] = obj
		}
		box.Add(obj)
	}
	return container.NewCenter(box), children, nil
}

func (s WidgetSpec) build(activate func(action string)) (fyne.CanvasObject, error) {
	switch s.Type {
	case "label":
		lbl := widget.NewLabel(s.Text)
		lbl.Alignment = fyne.TextAlignCenter
		if s.Style == "heading" {
			lbl.TextStyle = fyne.TextStyle{Bold: true}
			lbl.SizeName = theme.SizeNameHeadingText
		}
		return lbl, nil
	case "button":
		action := s.Action
		return widget.NewButton(s.Text, func() {
			if action != "" {
				activate(action)
			}
		}), nil
	case "separator":
		return widget.NewSeparator(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, s.Type)
}
