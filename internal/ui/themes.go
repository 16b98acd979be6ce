package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color

	LabelColor lipgloss.Color
	InputColor lipgloss.Color
}

var (
	currentThemeIndex = 0

	themes = []Theme{
		{
			Name:       "default",
			Subtle:     lipgloss.Color("#6C7086"),
			Highlight:  lipgloss.Color("#7DC4E4"),
			Special:    lipgloss.Color("#FF9E64"),
			Error:      lipgloss.Color("#F38BA8"),
			Border:     lipgloss.Color("#33B2FF"),
			LabelColor: lipgloss.Color("#A6ADC8"),
			InputColor: lipgloss.Color("#FFFFFF"),
		},
		{
			// RetroOrange - ciepły, pomarańczowy akcent
			Name:       "retro-orange",
			Subtle:     lipgloss.Color("#D0D0D0"),
			Highlight:  lipgloss.Color("#FFA500"),
			Special:    lipgloss.Color("#FF8C00"),
			Error:      lipgloss.Color("#DC143C"),
			Border:     lipgloss.Color("#FFA500"),
			LabelColor: lipgloss.Color("#E8E8E8"),
			InputColor: lipgloss.Color("#FFFFFF"),
		},
		{
			// ElectricBlue
			Name:       "electric-blue",
			Subtle:     lipgloss.Color("#C8C8C8"),
			Highlight:  lipgloss.Color("#00FFFF"),
			Special:    lipgloss.Color("#1E90FF"),
			Error:      lipgloss.Color("#FF6347"),
			Border:     lipgloss.Color("#00FFFF"),
			LabelColor: lipgloss.Color("#E8E8E8"),
			InputColor: lipgloss.Color("#FFFFFF"),
		},
	}
)

// SwitchTheme przełącza na następny motyw i aktualizuje wszystkie style
func SwitchTheme() string {
	currentThemeIndex = (currentThemeIndex + 1) % len(themes)
	currentTheme := themes[currentThemeIndex]
	updateStyles(currentTheme)
	return currentTheme.Name
}

// CurrentTheme zwraca aktywny motyw
func CurrentTheme() Theme {
	return themes[currentThemeIndex]
}

func updateStyles(theme Theme) {
	Subtle = theme.Subtle
	Highlight = theme.Highlight
	Special = theme.Special
	Error = theme.Error
	Border = theme.Border

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight).
		MarginLeft(2)

	TabStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(Highlight).
		Bold(true).
		Underline(true).
		Padding(0, 2)

	LabelStyle = lipgloss.NewStyle().
		Foreground(theme.LabelColor).
		Width(11)

	FocusedLabel = LabelStyle.
		Foreground(Highlight).
		Bold(true)

	DescriptionStyle = lipgloss.NewStyle().
		Foreground(Subtle).
		MarginLeft(2)

	InputStyle = lipgloss.NewStyle().
		Foreground(theme.InputColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Highlight).
		Padding(0, 1)

	ButtonStyle = lipgloss.NewStyle().
		Foreground(Special).
		Bold(true)

	ActiveButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(Highlight).
		Bold(true).
		Padding(0, 3)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(Special).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	WindowStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	DialogStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}
