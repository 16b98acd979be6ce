// internal/ui/styles.go

package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Kolory, nadpisywane przez SwitchTheme
	Subtle    lipgloss.Color
	Highlight lipgloss.Color
	Special   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color

	TitleStyle       lipgloss.Style
	TabStyle         lipgloss.Style
	ActiveTabStyle   lipgloss.Style
	LabelStyle       lipgloss.Style
	FocusedLabel     lipgloss.Style
	DescriptionStyle lipgloss.Style
	InputStyle       lipgloss.Style
	ButtonStyle      lipgloss.Style
	ActiveButton     lipgloss.Style
	SuccessStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	WindowStyle      lipgloss.Style
	DialogStyle      lipgloss.Style
)

func init() {
	updateStyles(themes[currentThemeIndex])
}
