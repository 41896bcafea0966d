package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Action is an application-wide command that menus, buttons and keyboard
// shortcuts can trigger.
type Action struct {
	Name      string
	Callback  func()
	Shortcuts []fyne.Shortcut
}

// ParseAccelerator converts an accelerator such as "<primary>q" or
// "<shift><alt>F1" into a fyne shortcut.
func ParseAccelerator(accel string) (fyne.Shortcut, error) {
	var mod fyne.KeyModifier
	rest := accel
	for strings.HasPrefix(rest, "<") {
		end := strings.Index(rest, ">")
		if end < 0 {
			return nil, fmt.Errorf("invalid accelerator %q", accel)
		}
		switch strings.ToLower(rest[1:end]) {
		case "primary":
			mod |= fyne.KeyModifierShortcutDefault
		case "control", "ctrl":
			mod |= fyne.KeyModifierControl
		case "shift":
			mod |= fyne.KeyModifierShift
		case "alt":
			mod |= fyne.KeyModifierAlt
		case "super":
			mod |= fyne.KeyModifierSuper
		default:
			return nil, fmt.Errorf("unknown modifier in accelerator %q", accel)
		}
		rest = rest[end+1:]
	}
	if rest == "" {
		return nil, fmt.Errorf("accelerator %q has no key", accel)
	}
	key := rest
	if len(key) == 1 {
		key = strings.ToUpper(key)
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(key), Modifier: mod}, nil
}
