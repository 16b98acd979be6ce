// internal/ui/models.go

package ui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"rdpLauncher/internal/config"
	"rdpLauncher/internal/hosts"
	"rdpLauncher/internal/models"
	"rdpLauncher/internal/profile"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sirupsen/logrus"
)

// KeyMap definiuje skróty klawiszowe
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Left      key.Binding
	Right     key.Binding
	Connect   key.Binding
	Erase     key.Binding
	SwitchTab key.Binding
	Theme     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap zwraca domyślne ustawienia klawiszy
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "protocol"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("→", "protocol"),
		),
		Connect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "connect"),
		),
		Erase: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "forget host"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("f2", "ctrl+o"),
			key.WithHelp("f2", "main/config"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Status reprezentuje stan aplikacji
type Status struct {
	Message string
	IsError bool
}

// ConnectForm to bieżące wartości pól formularza
type ConnectForm struct {
	ProtocolIndex int
	Account       string
	Host          string
	Width         string
	Height        string
}

// ProfileGenerator zapisuje profil i przekazuje go do systemu
type ProfileGenerator interface {
	Generate(req *models.ConnectionRequest) (string, error)
}

// Launch opisuje ostatnio wygenerowany profil
type Launch struct {
	Request *models.ConnectionRequest
	Screen  profile.Screen
	Path    string
}

// Model reprezentuje główny model aplikacji
type Model struct {
	keys       KeyMap
	status     Status
	form       ConnectForm
	width      int
	height     int
	quitting   bool
	config     *config.Manager
	history    *hosts.History
	generator  ProfileGenerator
	intn       func(n int) int
	log        logrus.FieldLogger
	lastLaunch *Launch
}

// NewModel tworzy model na podstawie wczytanej konfiguracji
func NewModel(cfg *config.Manager, history *hosts.History, generator ProfileGenerator, log logrus.FieldLogger) *Model {
	return &Model{
		keys:      DefaultKeyMap(),
		config:    cfg,
		history:   history,
		generator: generator,
		intn:      rand.IntN,
		log:       log,
		form: ConnectForm{
			ProtocolIndex: cfg.GetProtocolIndex(),
			Account:       cfg.GetLastAccount(),
			Host:          cfg.GetLastHost(),
		},
	}
}

// SetRandom podmienia źródło losowania serwera vault
func (m *Model) SetRandom(intn func(n int) int) {
	m.intn = intn
}

// Connect dodaje host do historii, generuje profil i otwiera go.
// Pusty host nic nie robi i zwraca nil.
func (m *Model) Connect(form ConnectForm) (*Launch, error) {
	m.form = form

	host := strings.TrimSpace(form.Host)
	if host == "" {
		return nil, nil
	}

	if err := m.history.Add(host); err != nil {
		return nil, err
	}

	width, err := profile.ParseDimension(form.Width)
	if err != nil {
		return nil, err
	}
	height, err := profile.ParseDimension(form.Height)
	if err != nil {
		return nil, err
	}

	// Lista serwerów jest czytana przy każdym połączeniu
	if err := m.config.Load(); err != nil {
		return nil, err
	}
	vault, err := m.config.PickVaultServer(m.intn)
	if err != nil {
		return nil, err
	}

	req := &models.ConnectionRequest{
		Account:     form.Account,
		Protocol:    models.ProtocolAt(form.ProtocolIndex),
		Host:        host,
		Width:       width,
		Height:      height,
		VaultServer: vault,
	}

	path, err := m.generator.Generate(req)
	if err != nil {
		m.log.WithError(err).WithField("host", host).Error("connect failed")
		return nil, err
	}

	m.lastLaunch = &Launch{
		Request: req,
		Screen:  profile.ScreenSettings(req.Protocol, req.Width, req.Height),
		Path:    path,
	}
	return m.lastLaunch, nil
}

// EraseHost usuwa host z historii
func (m *Model) EraseHost(host string) error {
	if strings.TrimSpace(host) == "" {
		return nil
	}
	if err := m.history.Remove(host); err != nil {
		return err
	}
	m.log.WithField("host", hosts.Normalize(host)).Info("host removed from history")
	return nil
}

// KnownHosts zwraca hosty do podpowiedzi; błąd odczytu daje pustą listę
func (m *Model) KnownHosts() []string {
	list, err := m.history.List()
	if err != nil {
		m.log.WithError(err).Warn("could not read host history")
		return []string{}
	}
	return list
}

// UpdateForm zapamiętuje wartości pól do zapisania przy wyjściu
func (m *Model) UpdateForm(form ConnectForm) {
	m.form = form
}

func (m *Model) GetForm() ConnectForm {
	return m.form
}

// SaveState zapisuje ostatnie wartości formularza do pliku konfiguracyjnego
func (m *Model) SaveState() error {
	if err := m.config.Save(m.form.ProtocolIndex, m.form.Account, m.form.Host); err != nil {
		return fmt.Errorf("could not save configuration: %w", err)
	}
	return nil
}

func (m *Model) GetLastLaunch() *Launch {
	return m.lastLaunch
}

func (m *Model) GetKeys() KeyMap {
	return m.keys
}

// SetStatus ustawia status aplikacji
func (m *Model) SetStatus(msg string, isError bool) {
	m.status = Status{
		Message: msg,
		IsError: isError,
	}
}

// ClearStatus czyści status
func (m *Model) ClearStatus() {
	m.status = Status{}
}

func (m *Model) GetStatus() Status {
	return m.status
}

func (m *Model) SetTerminalSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) GetTerminalWidth() int {
	return m.width
}

func (m *Model) GetTerminalHeight() int {
	return m.height
}

func (m *Model) SetQuitting(quitting bool) {
	m.quitting = quitting
}

func (m *Model) IsQuitting() bool {
	return m.quitting
}
