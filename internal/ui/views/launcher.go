// internal/ui/views/launcher.go

package views

import (
	"fmt"
	"strings"
	"time"

	"rdpLauncher/internal/models"
	"rdpLauncher/internal/ui"
	"rdpLauncher/internal/ui/components"
	"rdpLauncher/internal/ui/messages"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabMain tab = iota
	tabConfig
)

// Pola zakładki Main
const (
	fieldProtocol = iota
	fieldAccount
	fieldHost
	fieldConnect
	mainFieldCount
)

// Pola zakładki Config
const (
	fieldWidth = iota
	fieldHeight
	configFieldCount
)

const statusTimeout = 4 * time.Second

type launcherView struct {
	model         *ui.Model
	keys          ui.KeyMap
	activeTab     tab
	focus         int
	protocolIndex int
	account       textinput.Model
	host          textinput.Model
	screenWidth   textinput.Model
	screenHeight  textinput.Model
	popup         *components.Popup
	statusID      int
	width         int
	height        int
}

func NewLauncherView(model *ui.Model) *launcherView {
	form := model.GetForm()

	account := textinput.New()
	account.Placeholder = "username@address"
	account.Prompt = ""
	account.Width = 30
	account.SetValue(form.Account)

	host := textinput.New()
	host.Placeholder = "hostname"
	host.Prompt = ""
	host.Width = 30
	host.ShowSuggestions = true
	host.SetSuggestions(model.KnownHosts())
	host.SetValue(form.Host)

	w := textinput.New()
	w.Placeholder = "1024"
	w.Prompt = ""
	w.CharLimit = 5
	w.Width = 8
	w.SetValue(form.Width)

	h := textinput.New()
	h.Placeholder = "768"
	h.Prompt = ""
	h.CharLimit = 5
	h.Width = 8
	h.SetValue(form.Height)

	protocolIndex := form.ProtocolIndex
	if protocolIndex < 0 || protocolIndex >= len(models.Protocols) {
		protocolIndex = models.DefaultProtocolIndex
	}

	v := &launcherView{
		model:         model,
		keys:          model.GetKeys(),
		protocolIndex: protocolIndex,
		account:       account,
		host:          host,
		screenWidth:   w,
		screenHeight:  h,
		width:         model.GetTerminalWidth(),
		height:        model.GetTerminalHeight(),
	}
	// Kursor startuje w polu hosta
	v.focus = fieldHost
	v.applyFocus()
	return v
}

func (v *launcherView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *launcherView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.model.SetTerminalSize(msg.Width, msg.Height)
		return v, nil

	case messages.ClearStatusMsg:
		if msg.ID == v.statusID {
			v.model.ClearStatus()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v.updateFocusedInput(msg)
}

func (v *launcherView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Otwarty popup przechwytuje klawisze
	if v.popup != nil {
		switch msg.String() {
		case "esc", "enter":
			v.popup = nil
		case "ctrl+c":
			return v.quit()
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v.quit()

	case key.Matches(msg, v.keys.Theme):
		name := ui.SwitchTheme()
		return v, v.setStatus(fmt.Sprintf("Theme: %s", name), false)

	case key.Matches(msg, v.keys.SwitchTab):
		if v.activeTab == tabMain {
			v.activeTab = tabConfig
			v.focus = fieldWidth
		} else {
			v.activeTab = tabMain
			v.focus = fieldHost
		}
		v.applyFocus()
		return v, nil

	case key.Matches(msg, v.keys.Erase):
		return v.erase()

	case key.Matches(msg, v.keys.Connect):
		if v.activeTab == tabMain {
			return v.connect()
		}
		v.moveFocus(1)
		return v, nil

	case msg.String() == "tab" && v.activeTab == tabMain && v.focus == fieldHost:
		// Tab najpierw uzupełnia podpowiedź, dopiero potem przechodzi dalej
		if s := v.host.CurrentSuggestion(); s != "" && !strings.EqualFold(s, v.host.Value()) {
			v.host.SetValue(s)
			v.host.CursorEnd()
			return v, nil
		}
		v.moveFocus(1)
		return v, nil

	case key.Matches(msg, v.keys.Next):
		v.moveFocus(1)
		return v, nil

	case key.Matches(msg, v.keys.Prev):
		v.moveFocus(-1)
		return v, nil

	case v.activeTab == tabMain && v.focus == fieldProtocol && key.Matches(msg, v.keys.Left):
		v.protocolIndex = (v.protocolIndex + len(models.Protocols) - 1) % len(models.Protocols)
		v.syncForm()
		return v, nil

	case v.activeTab == tabMain && v.focus == fieldProtocol && key.Matches(msg, v.keys.Right):
		v.protocolIndex = (v.protocolIndex + 1) % len(models.Protocols)
		v.syncForm()
		return v, nil
	}

	return v.updateFocusedInput(msg)
}

func (v *launcherView) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if v.activeTab == tabMain {
		switch v.focus {
		case fieldAccount:
			v.account, cmd = v.account.Update(msg)
		case fieldHost:
			v.host, cmd = v.host.Update(msg)
		}
	} else {
		switch v.focus {
		case fieldWidth:
			v.screenWidth, cmd = v.screenWidth.Update(msg)
		case fieldHeight:
			v.screenHeight, cmd = v.screenHeight.Update(msg)
		}
	}
	v.syncForm()
	return v, cmd
}

func (v *launcherView) form() ui.ConnectForm {
	return ui.ConnectForm{
		ProtocolIndex: v.protocolIndex,
		Account:       v.account.Value(),
		Host:          v.host.Value(),
		Width:         v.screenWidth.Value(),
		Height:        v.screenHeight.Value(),
	}
}

func (v *launcherView) syncForm() {
	v.model.UpdateForm(v.form())
}

func (v *launcherView) connect() (tea.Model, tea.Cmd) {
	launch, err := v.model.Connect(v.form())
	if err != nil {
		v.popup = components.NewPopup(
			components.PopupError,
			"Connection failed",
			err.Error(),
			60,
			7,
			v.width,
			v.height,
		)
		return v, nil
	}
	if launch == nil {
		return v, nil
	}

	v.refreshSuggestions()
	return v, v.setStatus(fmt.Sprintf("Opened %s profile for %s via %s",
		launch.Request.Protocol, launch.Request.Host, launch.Request.VaultServer), false)
}

func (v *launcherView) erase() (tea.Model, tea.Cmd) {
	host := v.host.Value()
	if strings.TrimSpace(host) == "" {
		return v, nil
	}
	if err := v.model.EraseHost(host); err != nil {
		return v, v.setStatus(err.Error(), true)
	}

	v.refreshSuggestions()
	v.host.Reset()
	v.syncForm()
	return v, v.setStatus(fmt.Sprintf("Removed %s from history", strings.ToUpper(strings.TrimSpace(host))), false)
}

func (v *launcherView) quit() (tea.Model, tea.Cmd) {
	v.syncForm()
	v.model.SetQuitting(true)
	return v, tea.Quit
}

func (v *launcherView) refreshSuggestions() {
	v.host.SetSuggestions(v.model.KnownHosts())
}

func (v *launcherView) setStatus(msg string, isError bool) tea.Cmd {
	v.statusID++
	id := v.statusID
	v.model.SetStatus(msg, isError)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return messages.ClearStatusMsg{ID: id}
	})
}

func (v *launcherView) fieldCount() int {
	if v.activeTab == tabMain {
		return mainFieldCount
	}
	return configFieldCount
}

func (v *launcherView) moveFocus(delta int) {
	n := v.fieldCount()
	v.focus = (v.focus + delta + n) % n
	v.applyFocus()
}

func (v *launcherView) applyFocus() {
	v.account.Blur()
	v.host.Blur()
	v.screenWidth.Blur()
	v.screenHeight.Blur()

	if v.activeTab == tabMain {
		switch v.focus {
		case fieldAccount:
			v.account.Focus()
		case fieldHost:
			v.host.Focus()
		}
		return
	}
	switch v.focus {
	case fieldWidth:
		v.screenWidth.Focus()
	case fieldHeight:
		v.screenHeight.Focus()
	}
}

func (v *launcherView) label(text string, field int) string {
	if v.focus == field {
		return ui.FocusedLabel.Render(text)
	}
	return ui.LabelStyle.Render(text)
}

func (v *launcherView) renderTabs() string {
	names := []string{"Main", "Config"}
	rendered := make([]string, len(names))
	for i, name := range names {
		if tab(i) == v.activeTab {
			rendered[i] = ui.ActiveTabStyle.Render(name)
		} else {
			rendered[i] = ui.TabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (v *launcherView) renderProtocol() string {
	parts := make([]string, len(models.Protocols))
	for i, p := range models.Protocols {
		if i == v.protocolIndex {
			parts[i] = ui.SuccessStyle.Render("[" + p.String() + "]")
		} else {
			parts[i] = ui.DescriptionStyle.Render(" " + p.String() + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (v *launcherView) renderMain() string {
	button := ui.ButtonStyle.Render("Connect")
	if v.focus == fieldConnect {
		button = ui.ActiveButton.Render("Connect")
	}

	return v.label("Protocol:", fieldProtocol) + v.renderProtocol() + "\n\n" +
		v.label("Account:", fieldAccount) + ui.InputStyle.Render(v.account.View()) + "\n" +
		v.label("Host:", fieldHost) + ui.InputStyle.Render(v.host.View()) + "\n\n" +
		button
}

func (v *launcherView) renderConfig() string {
	return v.label("Width:", fieldWidth) + ui.InputStyle.Render(v.screenWidth.View()) + "\n" +
		v.label("Height:", fieldHeight) + ui.InputStyle.Render(v.screenHeight.View()) + "\n\n" +
		ui.DescriptionStyle.Render("Leave both empty for protocol defaults (RDP fullscreen, SSH 1024x768)")
}

func (v *launcherView) renderLastLaunch() string {
	launch := v.model.GetLastLaunch()
	if launch == nil {
		return ""
	}
	rows := [][]string{
		{"Host", launch.Request.Host},
		{"Protocol", launch.Request.Protocol.String()},
		{"Vault", launch.Request.VaultServer},
		{"Screen", fmt.Sprintf("%dx%d (mode %d)", launch.Screen.Width, launch.Screen.Height, launch.Screen.Mode)},
		{"Profile", launch.Path},
	}
	return "\n\n" + ui.CreateLipglossTable([]string{"Last launch", ""}, rows)
}

func (v *launcherView) View() string {
	if v.popup != nil {
		return v.popup.Render()
	}

	var content string
	content = ui.TitleStyle.Render("Remote Vault Connection") + "\n\n"
	content += v.renderTabs() + "\n\n"

	if v.activeTab == tabMain {
		content += v.renderMain()
	} else {
		content += v.renderConfig()
	}

	content += v.renderLastLaunch()

	k := v.keys
	help := []string{
		k.Connect.Help().Key + " - " + k.Connect.Help().Desc,
		k.Next.Help().Key + " - " + k.Next.Help().Desc,
		k.SwitchTab.Help().Key + " - " + k.SwitchTab.Help().Desc,
		k.Erase.Help().Key + " - " + k.Erase.Help().Desc,
		k.Theme.Help().Key + " - " + k.Theme.Help().Desc,
		k.Quit.Help().Key + " - " + k.Quit.Help().Desc,
	}
	content += "\n\n" + ui.DescriptionStyle.Render(strings.Join(help, "   "))

	if status := v.model.GetStatus(); status.Message != "" {
		style := ui.SuccessStyle
		if status.IsError {
			style = ui.ErrorStyle
		}
		content += "\n\n" + style.Render(status.Message)
	}

	return ui.Center(v.width, v.height, ui.WindowStyle.Render(content))
}
