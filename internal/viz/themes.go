package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the board and panel colors for the TUI
type Theme struct {
	Name       string
	Light      lipgloss.Color
	Dark       lipgloss.Color
	Highlight  lipgloss.Color
	WhitePiece lipgloss.Color
	BlackPiece lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Light:      lipgloss.Color("#FFCE9E"),
		Dark:       lipgloss.Color("#D18B47"),
		Highlight:  lipgloss.Color("#CDD26A"),
		WhitePiece: lipgloss.Color("#ffffff"),
		BlackPiece: lipgloss.Color("#000000"),
		Primary:    lipgloss.Color("#00ffff"),
		Accent:     lipgloss.Color("#ff00ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffaa00"),
	}

	ThemeWalnut = Theme{
		Name:       "walnut",
		Light:      lipgloss.Color("#E8C9A0"),
		Dark:       lipgloss.Color("#7A4A2A"), // Dark walnut
		Highlight:  lipgloss.Color("#B8A040"),
		WhitePiece: lipgloss.Color("#fff8ee"),
		BlackPiece: lipgloss.Color("#1a0d00"),
		Primary:    lipgloss.Color("#ffcc66"),
		Accent:     lipgloss.Color("#ff8844"),
		Text:       lipgloss.Color("#fff5e6"),
		Muted:      lipgloss.Color("#8b6b4c"),
		Success:    lipgloss.Color("#88dd66"),
		Warning:    lipgloss.Color("#ffc048"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Light:      lipgloss.Color("#bbbbbb"),
		Dark:       lipgloss.Color("#555555"),
		Highlight:  lipgloss.Color("#888888"),
		WhitePiece: lipgloss.Color("#ffffff"),
		BlackPiece: lipgloss.Color("#000000"),
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#cccccc"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#ffffff"),
		Warning:    lipgloss.Color("#cccccc"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Light:      lipgloss.Color("#9fd3e6"),
		Dark:       lipgloss.Color("#2b6f8f"), // Ocean blue
		Highlight:  lipgloss.Color("#ffd700"),
		WhitePiece: lipgloss.Color("#ffffff"),
		BlackPiece: lipgloss.Color("#001a33"),
		Primary:    lipgloss.Color("#00a8cc"),
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Success:    lipgloss.Color("#00ff88"),
		Warning:    lipgloss.Color("#ffcc00"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeWalnut,
		ThemeMono,
		ThemeOcean,
	}
)

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after name, wrapping around
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
