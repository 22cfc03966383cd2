package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors the live viewer.
type Theme struct {
	Name  string
	Alive lipgloss.Color
	Dead  lipgloss.Color
	Text  lipgloss.Color
	Muted lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:  "retro",
		Alive: lipgloss.Color("#00ff00"),
		Dead:  lipgloss.Color("#003300"),
		Text:  lipgloss.Color("#88ff88"),
		Muted: lipgloss.Color("#005500"),
	}

	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Alive: lipgloss.Color("#ff00ff"),
		Dead:  lipgloss.Color("#1a001a"),
		Text:  lipgloss.Color("#00ffff"),
		Muted: lipgloss.Color("#666666"),
	}

	ThemeMinimal = Theme{
		Name:  "minimal",
		Alive: lipgloss.Color("#ffffff"),
		Dead:  lipgloss.Color("#333333"),
		Text:  lipgloss.Color("#cccccc"),
		Muted: lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Alive: lipgloss.Color("#00a8cc"),
		Dead:  lipgloss.Color("#001a33"),
		Text:  lipgloss.Color("#e0f0ff"),
		Muted: lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Alive: lipgloss.Color("#feca57"),
		Dead:  lipgloss.Color("#2d1b2e"),
		Text:  lipgloss.Color("#fff5f5"),
		Muted: lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
