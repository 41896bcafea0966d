package model

// AppConfig holds the desktop app's persisted preferences.
type AppConfig struct {
	Theme string `json:"theme"` // "light", "dark", "system"

	// Last window size; zero means the size from the window layout.
	WindowWidth  float32 `json:"window_width"`
	WindowHeight float32 `json:"window_height"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Theme: "system",
	}
}

// Normalize replaces unknown themes and negative sizes with defaults.
func (c AppConfig) Normalize() AppConfig {
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = DefaultAppConfig().Theme
	}
	if c.WindowWidth < 0 || c.WindowHeight < 0 {
		c.WindowWidth, c.WindowHeight = 0, 0
	}
	return c
}
