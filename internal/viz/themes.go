package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of the stick figure and the side panel.
type Theme struct {
	Name   string
	Figure lipgloss.Color
	Accent lipgloss.Color
	Label  lipgloss.Color
	Border lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Figure: lipgloss.Color("#00ffff"),
		Accent: lipgloss.Color("#ff00ff"),
		Label:  lipgloss.Color("#ffff00"),
		Border: lipgloss.Color("#444466"),
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#666688"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Figure: lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#ccffcc"),
		Border: lipgloss.Color("#005500"),
		Text:   lipgloss.Color("#00ff00"),
		Muted:  lipgloss.Color("#007700"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Figure: lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Label:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#444444"),
		Text:   lipgloss.Color("#cccccc"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Figure: lipgloss.Color("#00a8cc"),
		Accent: lipgloss.Color("#ffd700"),
		Label:  lipgloss.Color("#e0f0ff"),
		Border: lipgloss.Color("#0077be"),
		Text:   lipgloss.Color("#e0f0ff"),
		Muted:  lipgloss.Color("#4488aa"),
	}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
