package components

import (
	"rdpLauncher/internal/ui"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type PopupType int

const (
	PopupNone PopupType = iota
	PopupMessage
	PopupError
)

type Popup struct {
	Type         PopupType
	Title        string
	Message      string
	Width        int
	Height       int
	ScreenWidth  int
	ScreenHeight int
}

func NewPopup(popupType PopupType, title, message string, width, height, screenWidth, screenHeight int) *Popup {
	return &Popup{
		Type:         popupType,
		Title:        title,
		Message:      message,
		Width:        width,
		Height:       height,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (p *Popup) Render() string {
	border := ui.Border
	if p.Type == PopupError {
		border = ui.Error
	}

	popupStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(p.Width).
		Height(p.Height)

	titleStyle := ui.TitleStyle.
		Align(lipgloss.Center).
		Width(p.Width - 4)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.Title) + "\n\n")
	if p.Type == PopupError {
		content.WriteString(ui.ErrorStyle.Render(p.Message) + "\n")
	} else {
		content.WriteString(p.Message + "\n")
	}
	content.WriteString("\n" + ui.DescriptionStyle.Render("ESC/ENTER - Close"))

	popupContent := popupStyle.Render(content.String())

	return ui.Center(p.ScreenWidth, p.ScreenHeight, popupContent)
}
