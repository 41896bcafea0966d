// This file defines the app's theme wrapper.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// HelloFyneGoTheme wraps the default Fyne theme and pins the light/dark
// variant when the user chose one.
type HelloFyneGoTheme struct {
	base    fyne.Theme
	variant *fyne.ThemeVariant // nil follows the system
}

// NewHelloFyneGoTheme creates a theme for a "light", "dark" or "system"
// preference.
func NewHelloFyneGoTheme(preference string) *HelloFyneGoTheme {
	t := &HelloFyneGoTheme{base: theme.DefaultTheme()}
	t.SetPreference(preference)
	return t
}

// SetPreference updates the variant from a preference string.
func (t *HelloFyneGoTheme) SetPreference(preference string) {
	var v fyne.ThemeVariant
	switch preference {
	case "light":
		v = theme.VariantLight
	case "dark":
		v = theme.VariantDark
	default:
		t.variant = nil
		return
	}
	t.variant = &v
}

// Color delegates to the base theme, substituting the pinned variant.
func (t *HelloFyneGoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		variant = *t.variant
	}
	return t.base.Color(name, variant)
}

func (t *HelloFyneGoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *HelloFyneGoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *HelloFyneGoTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
