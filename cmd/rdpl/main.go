package main

import (
	"flag"
	"fmt"
	"os"

	"rdpLauncher/internal/config"
	"rdpLauncher/internal/hosts"
	"rdpLauncher/internal/logger"
	"rdpLauncher/internal/opener"
	"rdpLauncher/internal/profile"
	"rdpLauncher/internal/ui"
	"rdpLauncher/internal/ui/views"
	"rdpLauncher/internal/utils"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type programModel struct {
	quitting    bool
	uiModel     *ui.Model
	currentView tea.Model
}

func initialModel(uiModel *ui.Model) *programModel {
	// Ustaw domyślny rozmiar terminala
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		uiModel.SetTerminalSize(w, h)
	}

	return &programModel{
		uiModel:     uiModel,
		currentView: views.NewLauncherView(uiModel),
	}
}

func (m *programModel) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m *programModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.currentView, cmd = m.currentView.Update(msg)

	if m.uiModel.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

func (m *programModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	return m.currentView.View()
}

func main() {
	// Parsowanie flag linii komend
	homeDir := flag.String("home", "", "Launcher directory containing conf/ (default: executable directory)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	home := *homeDir
	if home == "" {
		dir, err := utils.InstallDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		home = dir
	}
	paths := utils.NewPaths(home)

	logCfg := logger.DefaultConfig(paths.Log)
	if *debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}
	log := logger.GetLogger()

	cfg := config.NewManager(paths.Config)
	if err := cfg.Load(); err != nil {
		log.WithError(err).Error("could not load configuration")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	generator := profile.NewGenerator(paths.Template, paths.Profile, opener.NewSystemOpener(log), log)
	uiModel := ui.NewModel(cfg, hosts.NewHistory(paths.Hosts), generator, log)

	logger.Infof("launcher started, home=%s", paths.Home)

	m := initialModel(uiModel)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Zapis ostatnich wartości przy zamknięciu
	if err := uiModel.SaveState(); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
