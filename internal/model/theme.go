package model

import "errors"

var ErrInvalidTheme = errors.New("model: invalid background theme")

type Theme string

const (
	ThemeLight    Theme = "light"
	ThemeDark     Theme = "dark"
	ThemeGradient Theme = "gradient"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeGradient:
		return true
	default:
		return false
	}
}

type ThemeInfo struct {
	Theme       Theme
	Name        string
	Description string
}

var themes = []ThemeInfo{
	{Theme: ThemeLight, Name: "Light", Description: "Clean & minimal"},
	{Theme: ThemeDark, Name: "Dark", Description: "Deep & elegant"},
	{Theme: ThemeGradient, Name: "Purple-Blue", Description: "Glassmorphic blend"},
}

func Themes() []ThemeInfo {
	out := make([]ThemeInfo, len(themes))
	copy(out, themes)
	return out
}

// Info falls back to the gradient theme for unknown values.
func (t Theme) Info() ThemeInfo {
	for _, info := range themes {
		if info.Theme == t {
			return info
		}
	}
	return themes[2]
}

func (t Theme) Next() Theme {
	for i, info := range themes {
		if info.Theme == t {
			return themes[(i+1)%len(themes)].Theme
		}
	}
	return ThemeLight
}
