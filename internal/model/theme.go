package model

// Theme is the display palette. Exactly two values exist.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	// DefaultTheme is used when nothing valid has been persisted.
	DefaultTheme = ThemeDark
)

// ParseTheme converts a persisted value into a Theme. The second return
// value is false for anything other than "dark" or "light".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark:
		return ThemeDark, true
	case ThemeLight:
		return ThemeLight, true
	default:
		return DefaultTheme, false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}

	return ThemeLight
}

func (t Theme) IsLight() bool {
	return t == ThemeLight
}

func (t Theme) String() string {
	return string(t)
}
